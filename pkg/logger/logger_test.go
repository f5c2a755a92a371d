package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Astemirdum/school-library/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_FileSink(t *testing.T) {
	sink := filepath.Join(t.TempDir(), "library.log")
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "library")

	log.Debug("hidden")
	log.Info("visible")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(sink)
	require.NoError(t, err)
	out := string(data)
	require.True(t, strings.Contains(out, `"msg":"visible"`))
	require.True(t, strings.Contains(out, `"logger":"library"`))
	require.False(t, strings.Contains(out, "hidden"))
}
