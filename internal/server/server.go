package server

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

type server struct {
	transports      []transport
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer opens a listener for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil {
		return nil, errHandlersAreNil
	}

	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, httpSrv)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			s.closeListeners()
			return nil, err
		}
		s.transports = append(s.transports, grpcSrv)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	serveErr := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Str("addr", t.Addr()).Msgf("Launching %s server", t.Name())
		go func() {
			serveErr <- t.RunServer()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var shutdownErr error
	for _, t := range s.transports {
		if err := t.Shutdown(shutdownCtx); err != nil {
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}
	if shutdownErr != nil {
		s.logger.Err(shutdownErr).Msg("server Shutdown with errors")
	} else {
		s.logger.Info().Msg("server Shutdown gracefully")
	}

	return errors.Join(runErr, shutdownErr)
}

func (s *server) closeListeners() {
	for _, t := range s.transports {
		if h, ok := t.(*httpServer); ok {
			_ = h.listener.Close()
		}
	}
}
