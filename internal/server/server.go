// Package server provides HTTP server lifecycle management with graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kestrelworks/routekit/internal/config"
)

// Server wraps an http.Server with signal-driven graceful shutdown.
type Server struct {
	http            *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New creates a server with the specified configuration, handler, and logger.
func New(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeoutDuration(),
			WriteTimeout: cfg.WriteTimeoutDuration(),
			IdleTimeout:  cfg.IdleTimeoutDuration(),
		},
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}
}

// Run listens for HTTP requests until SIGINT or SIGTERM, then drains within
// the shutdown timeout. It returns the first serve or shutdown error.
func (s *Server) Run() error {
	shutdownErr := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		s.logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		shutdownErr <- s.http.Shutdown(ctx)
	}()

	s.logger.Info("server listening", "addr", s.http.Addr)

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	s.logger.Info("server stopped")
	return nil
}
