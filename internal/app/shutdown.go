package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"job-scraper/internal/observability"
)

// GracefulShutdown returns a context cancelled on SIGINT/SIGTERM, so that a
// running fetch unwinds and closes its browser before the process exits.
func GracefulShutdown(logger *observability.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
