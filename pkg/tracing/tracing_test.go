package tracing_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/school-library/pkg/tracing"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), tracing.Config{}, "library")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInit_Exporter(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), tracing.Config{
		Endpoint: "127.0.0.1:4318",
		Insecure: true,
		Ratio:    1,
	}, "library")
	require.NoError(t, err)
	// nothing was recorded, so shutdown has nothing to flush
	require.NoError(t, shutdown(context.Background()))
}
