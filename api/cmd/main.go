// api/cmd/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/feedbackloop/feedback-service/internal/bootstrap"
	"github.com/feedbackloop/feedback-service/internal/logger"
)

const serviceName = "feedback-service"

// shutdownGrace bounds how long in-flight requests may run once a stop
// signal arrives; after that the server is closed hard.
const shutdownGrace = 15 * time.Second

// httpServer is the minimal surface Run() needs from an HTTP server,
// kept as an interface so tests can substitute a fake.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Close() error
	Addr() string
}

type realServer struct{ *http.Server }

func (r realServer) Addr() string { return r.Server.Addr }

// serverBuilder builds the server and returns a cleanup function.
type serverBuilder func() (httpServer, func(), error)

func Run(build serverBuilder, sigCh <-chan os.Signal, lg zerolog.Logger) int {
	srv, cleanup, err := build()
	if err != nil {
		lg.Error().Err(err).Str("service", serviceName).Msg("bootstrap failed")
		return 1
	}
	defer cleanup()

	// ListenAndServe blocks, so the server runs in its own goroutine and
	// reports crashes through errCh.
	errCh := make(chan error, 1)
	go func() {
		lg.Info().Str("service", serviceName).Str("addr", srv.Addr()).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		lg.Info().Str("signal", sig.String()).Msg("stop signal received, draining")

	case err := <-errCh:
		// Exit non-zero so an orchestrator restarts the service.
		lg.Error().Err(err).Msg("http server crashed")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("graceful shutdown failed, forcing close")
		_ = srv.Close()
	}

	lg.Info().Str("service", serviceName).Msg("shutdown complete")
	return 0
}

// buildFromBootstrap adapts bootstrap.NewServer() to the serverBuilder shape.
func buildFromBootstrap() (httpServer, func(), error) {
	srv, cleanup, err := bootstrap.NewServer()
	if err != nil {
		return nil, nil, err
	}
	return realServer{srv}, cleanup, nil
}

func main() {
	logger.Init()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	os.Exit(Run(buildFromBootstrap, sigCh, zlog.Logger))
}
