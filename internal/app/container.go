package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/nutritrack-backend/internal/adapter/failover"
	"github.com/heartmarshall/nutritrack-backend/internal/adapter/postgres"
	pgjournal "github.com/heartmarshall/nutritrack-backend/internal/adapter/postgres/journal"
	"github.com/heartmarshall/nutritrack-backend/internal/adapter/provider/openfoodfacts"
	"github.com/heartmarshall/nutritrack-backend/internal/adapter/provider/usda"
	"github.com/heartmarshall/nutritrack-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/nutritrack-backend/internal/config"
	"github.com/heartmarshall/nutritrack-backend/internal/provider"
	"github.com/heartmarshall/nutritrack-backend/internal/service/food"
	"github.com/heartmarshall/nutritrack-backend/internal/service/journal"
)

// Container holds the wired services shared by the API server and the CLI.
type Container struct {
	Food    *food.Service
	Journal *journal.Service

	// JournalStore is the store the journal service writes to.
	JournalStore failover.Store
	// Stores are the individual journal stores by name, for health reporting.
	Stores map[string]failover.Store

	closers []func()
}

// NewContainer connects the journal stores and builds the services.
//
// SQLite is always opened. When a PostgreSQL DSN is configured it becomes the
// primary store with SQLite as fallback; if PostgreSQL cannot be reached at
// startup the container runs on SQLite alone.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{Stores: make(map[string]failover.Store)}

	local, err := sqlite.Open(cfg.Journal.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite journal: %w", err)
	}
	c.closers = append(c.closers, func() { _ = local.Close() })
	c.Stores["sqlite"] = local
	c.JournalStore = local

	if cfg.Database.PostgresEnabled() {
		repo, err := c.connectPostgres(ctx, cfg.Database, logger)
		switch {
		case errors.Is(err, context.Canceled):
			c.Close()
			return nil, err
		case err != nil:
			logger.WarnContext(ctx, "postgres unavailable, journal runs on sqlite only",
				slog.String("error", err.Error()),
			)
		default:
			c.Stores["postgres"] = repo
			c.JournalStore = failover.NewJournal(repo, local, logger)
		}
	}

	retrier := provider.NewRetrier(cfg.Retry.MaxAttempts, cfg.Retry.BaseDelay, logger)

	c.Food = food.NewService(
		logger,
		usda.NewClient(cfg.USDA, logger),
		openfoodfacts.NewClient(cfg.OpenFoodFacts, logger),
		retrier,
	)
	c.Journal = journal.NewService(logger, c.JournalStore, cfg.Journal.Location)

	return c, nil
}

func (c *Container) connectPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgjournal.Repo, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	c.closers = append(c.closers, pool.Close)
	return pgjournal.New(pool), nil
}

// Close releases the journal stores in reverse order of opening.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
