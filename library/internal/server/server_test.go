package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/school-library/library/config"
)

func TestNewServer_Timeouts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cfg         config.HTTPServer
		read, write time.Duration
	}{
		{
			name:  "defaults",
			cfg:   config.HTTPServer{Host: "0.0.0.0", Port: "8080"},
			read:  defaultTimeout,
			write: defaultTimeout,
		},
		{
			name:  "configured",
			cfg:   config.HTTPServer{Host: "127.0.0.1", Port: "9090", ReadTimeout: time.Second, WriteTimeout: time.Minute},
			read:  time.Second,
			write: time.Minute,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := NewServer(tt.cfg, http.NotFoundHandler())
			require.Equal(t, tt.read, srv.httpServer.ReadTimeout)
			require.Equal(t, tt.write, srv.httpServer.WriteTimeout)
			require.Equal(t, tt.cfg.Host+":"+tt.cfg.Port, srv.Addr())
		})
	}
}

func TestServer_RunStop(t *testing.T) {
	srv := NewServer(config.HTTPServer{Host: "127.0.0.1", Port: "0"}, http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	// Shutdown may race ListenAndServe; either way Run must return nil.
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
