package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"launcher-icon-generator/services"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Setting up context with SIGTERM and SIGINT signal handling so an interrupt stops the run
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := rootCommand.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// generate runs every icon of the table and the store icon. Per-icon
// failures are logged by the service and do not fail the run.
func generate(ctx context.Context, svc *services.ResizingService, logger *zap.Logger) error {
	errGroup, groupCtx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	errGroup.Go(func() error {
		defer close(done)
		_, err := svc.RunAll(groupCtx)
		return err
	})

	// Goroutine to report an interrupt while icons are still being written
	errGroup.Go(func() error {
		select {
		case <-done:
		case <-ctx.Done():
			logger.Warn("interrupt received, stopping after the current icon")
		}
		return nil
	})

	return errGroup.Wait()
}
