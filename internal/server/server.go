package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/handler"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
)

type server struct {
	httpServer *httpServer
	hooks      []func()
	logger     *logger.Logger
}

// NewServer builds the server for the enabled transports. hooks run in
// order after the transports have shut down.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, hooks ...func()) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{hooks: hooks, logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoTransport
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	for _, hook := range s.hooks {
		hook()
	}
}

func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errTransportMissing
	}

	stopped := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(stopped)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-stopped
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
