package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BroadcasterPro_Go/internal/config"
	"github.com/osse101/BroadcasterPro_Go/internal/database"
	"github.com/osse101/BroadcasterPro_Go/internal/database/postgres"
	"github.com/osse101/BroadcasterPro_Go/internal/database/sqlite"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

// Repositories holds the repository implementations for the configured driver
type Repositories struct {
	User      repository.User
	Ledger    repository.Ledger
	Queue     repository.Queue
	Broadcast repository.Broadcast
	Payment   repository.Payment
	Admin     repository.Admin

	// Pool is pinged by the readiness check and closed on shutdown
	Pool database.Pool
}

// OpenRepositories connects to the configured database, applies pending
// migrations and builds every repository on the same connection.
func OpenRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
		}
		db, err := database.OpenSQLite(cfg.GetDBConnString())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
		}
		if _, err := database.Migrate(ctx, db, database.DriverNameSQLite); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgDatabaseReady, "driver", cfg.DBDriver, "path", cfg.SQLitePath)
		return sqliteRepositories(db), nil

	default:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
		}
		if _, err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgDatabaseReady, "driver", cfg.DBDriver, "host", cfg.DBHost)
		return postgresRepositories(pool), nil
	}
}

func postgresRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      postgres.NewUserRepository(pool),
		Ledger:    postgres.NewLedgerRepository(pool),
		Queue:     postgres.NewQueueRepository(pool),
		Broadcast: postgres.NewBroadcastRepository(pool),
		Payment:   postgres.NewPaymentRepository(pool),
		Admin:     postgres.NewAdminRepository(pool),
		Pool:      pool,
	}
}

func sqliteRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:      sqlite.NewUserRepository(db),
		Ledger:    sqlite.NewLedgerRepository(db),
		Queue:     sqlite.NewQueueRepository(db),
		Broadcast: sqlite.NewBroadcastRepository(db),
		Payment:   sqlite.NewPaymentRepository(db),
		Admin:     sqlite.NewAdminRepository(db),
		Pool:      database.SQLPool{DB: db},
	}
}
