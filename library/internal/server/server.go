package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/school-library/library/config"
)

const defaultTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTPServer, h http.Handler) *Server {
	read, write := cfg.ReadTimeout, cfg.WriteTimeout
	if read <= 0 {
		read = defaultTimeout
	}
	if write <= 0 {
		write = defaultTimeout
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           h,
			ReadTimeout:       read,
			ReadHeaderTimeout: read,
			WriteTimeout:      write,
			MaxHeaderBytes:    1 << 20,
		},
	}
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run blocks until the server is stopped. A graceful Stop is not an error.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "ListenAndServe")
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
