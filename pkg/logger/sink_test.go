package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_UnopenableSink(t *testing.T) {
	var out bytes.Buffer
	sink := filepath.Join(t.TempDir(), "missing", "library.log")
	log := newLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "library", zapcore.AddSync(&out))

	log.Info("after fallback")
	require.NoError(t, log.Sync())

	got := out.String()
	require.Contains(t, got, `"msg":"open log sink, writing to stdout"`)
	require.Contains(t, got, sink)
	require.Contains(t, got, "no such file or directory")
	require.Contains(t, got, `"msg":"after fallback"`)
}
