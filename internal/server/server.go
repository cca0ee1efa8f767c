package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/privyhq/privy/internal/config"
	httpHandler "github.com/privyhq/privy/internal/handler/http"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the transport server from the HTTP handler and starts
// nothing yet; call RunServer to serve until a stop signal arrives.
// Background workers passed in are launched alongside the transport and
// stopped with it.
func NewServer(handler *httpHandler.Handler, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		workers:    background,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if s.workers != nil {
		s.workers.Run(ctx)
	}

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}
