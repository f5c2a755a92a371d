package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "biblio")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "escola")
	t.Setenv("HTTP_WRITE", "30s")
	t.Setenv("KAFKA_ADDRS", "k1:9092,k2:9092")

	cfg, err := load(WithLogLevel(zapcore.DebugLevel), WithWriteTimeout(time.Minute), WithReadTimeout(time.Second))
	require.NoError(t, err)

	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, "5433", cfg.Database.Port)
	require.Equal(t, "biblio", cfg.Database.Username)
	require.Equal(t, "secret", cfg.Database.Password)
	require.Equal(t, "escola", cfg.Database.NameDB)
	require.EqualValues(t, 10, cfg.Database.MaxConns)
	require.Equal(t, 10*time.Second, cfg.Database.IdleTimeout)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)

	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Addrs)
	require.Equal(t, "library-events", cfg.Kafka.Topic)
	require.True(t, cfg.Kafka.Enabled())
	require.Empty(t, cfg.Tracing.Endpoint)
}
