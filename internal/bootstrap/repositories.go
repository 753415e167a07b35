package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GroupIronmen_Go/internal/config"
	"github.com/osse101/GroupIronmen_Go/internal/database"
	"github.com/osse101/GroupIronmen_Go/internal/database/postgres"
	"github.com/osse101/GroupIronmen_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Group repository.Group
	Auth  repository.Auth
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Group: postgres.NewGroupRepository(dbPool),
		Auth:  postgres.NewAuthRepository(dbPool),
	}
}

// SetupDatabase opens the pool described by cfg and applies pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgMigrationsApplied)
	return pool, nil
}
