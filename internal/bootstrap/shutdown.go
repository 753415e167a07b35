package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GroupIronmen_Go/internal/database"
)

// Stopper is a component that drains in-flight work on shutdown.
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    Stopper
	Scheduler Stopper
	Workers   Stopper
	DBPool    database.Pool
}

// GracefulShutdown stops the HTTP server and background jobs, then closes the
// database pool so in-flight work can finish its transactions first.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		if err := components.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}

	if components.Workers != nil {
		slog.Info(LogMsgStoppingWorkers)
		if err := components.Workers.Stop(ctx); err != nil {
			slog.Error(LogMsgWorkersStopFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
