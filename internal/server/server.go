package server

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-post-keeper/internal/config"
	"github.com/MKhiriev/go-post-keeper/internal/handler"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    BackgroundWorkers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer wires the HTTP handler and the background workers into one
// lifecycle. workers may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundWorkers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         workers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer serves until ctx is cancelled (typically by a termination
// signal) or the listener fails. On return, in-flight requests have
// finished or were cut off after the shutdown timeout, and the workers have
// drained.
func (s *server) RunServer(ctx context.Context) error {
	return s.run(ctx, s.httpServer.RunServer)
}

func (s *server) run(ctx context.Context, serve func() error) error {
	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()

	if s.workers != nil {
		s.workers.Run(workersCtx)
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- serve()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case runErr = <-serveErr:
		if runErr != nil {
			s.logger.Err(runErr).Msg("HTTP server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	shutdownErr := s.Shutdown(shutdownCtx)

	stopWorkers()
	if s.workers != nil {
		s.workers.Wait()
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return errors.Join(runErr, shutdownErr)
}

func (s *server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
