package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/eddieoz/openxrypt/internal/config"
	"github.com/eddieoz/openxrypt/internal/logger"
)

type server struct {
	httpServer *httpServer
	onShutdown []func()
	logger     *logger.Logger
}

// NewServer wraps the control-channel router in a managed HTTP server bound
// to cfg.Address. onShutdown hooks run after the listener has drained, in
// registration order; they are where the caller stops workers and closes
// the keyring store.
func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger, onShutdown ...func()) (Server, error) {
	logger.Info().Msg("creating control-channel server...")

	if router == nil {
		return nil, errNoHandlerProvided
	}

	return &server{
		httpServer: newHTTPServer(router, cfg),
		onShutdown: onShutdown,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	for _, hook := range s.onShutdown {
		hook()
	}
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

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

	return nil
}
