package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything with a graceful, deadline-bound shutdown
type Stopper interface {
	Shutdown(ctx context.Context) error
}

// ServerStopper stops the HTTP server
type ServerStopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds everything that needs graceful shutdown. Nil fields are skipped.
type ShutdownComponents struct {
	Server  ServerStopper
	Workers map[string]Stopper
	// Closers run last, after in-flight work has drained
	Closers []func()
}

// GracefulShutdown stops the server first so no new work arrives, then the
// workers, then releases resources. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	for name, w := range c.Workers {
		if w == nil {
			continue
		}
		if err := w.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "worker", name, "error", err)
		}
	}

	for _, closeFn := range c.Closers {
		closeFn()
	}

	slog.Info(LogMsgServerStopped)
}
