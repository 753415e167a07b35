package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GroupIronmen_Go/internal/auth"
	"github.com/osse101/GroupIronmen_Go/internal/bootstrap"
	"github.com/osse101/GroupIronmen_Go/internal/config"
	"github.com/osse101/GroupIronmen_Go/internal/discord"
	"github.com/osse101/GroupIronmen_Go/internal/group"
	"github.com/osse101/GroupIronmen_Go/internal/server"
)

const shutdownTimeout = 30 * time.Second

// @title Group Ironmen API
// @version 1.0
// @description Shared progress tracker for group ironman accounts.
// @BasePath /
// @securityDefinitions.apikey GroupToken
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	for _, warning := range warnings {
		slog.Warn("Configuration warning", "warning", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collectionLogInfo, err := bootstrap.LoadCollectionLogInfo(cfg.CollectionLogInfoPath)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	authenticator := auth.NewAuthenticator(repos.Auth, cfg.AuthCacheSize, cfg.AuthCacheTTL)
	dispatcher := discord.NewWebhookClient(cfg.WebhookTimeout)
	groupService := group.NewService(repos.Group, collectionLogInfo, dispatcher)
	jobs := bootstrap.StartBackgroundJobs(cfg, repos.Group)

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, dbPool, authenticator, groupService, collectionLogInfo.Raw())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: jobs.Scheduler,
		Workers:   jobs.Pool,
		DBPool:    dbPool,
	})
}
