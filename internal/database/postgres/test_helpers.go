package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/BroadcasterPro_Go/internal/database"
)

var (
	testPool     *pgxpool.Pool
	testPoolOnce sync.Once
	testPoolErr  string
)

// setupTestPool starts one postgres container for the package and migrates it.
// Tests are skipped when Docker is unavailable.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testPoolOnce.Do(func() {
		ctx := context.Background()
		var pgContainer *postgres.PostgresContainer

		func() {
			defer func() {
				if r := recover(); r != nil {
					testPoolErr = "docker unavailable"
				}
			}()
			var err error
			pgContainer, err = postgres.Run(ctx,
				"postgres:15-alpine",
				postgres.WithDatabase("testdb"),
				postgres.WithUsername("testuser"),
				postgres.WithPassword("testpass"),
				testcontainers.WithWaitStrategy(
					wait.ForLog("database system is ready to accept connections").
						WithOccurrence(2).
						WithStartupTimeout(30*time.Second)),
			)
			if err != nil {
				testPoolErr = err.Error()
			}
		}()
		if pgContainer == nil {
			return
		}

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			testPoolErr = err.Error()
			return
		}
		pool, err := database.NewPool(connStr, 10, time.Minute, 5*time.Minute)
		if err != nil {
			testPoolErr = err.Error()
			return
		}
		if _, err := database.MigratePool(ctx, pool); err != nil {
			testPoolErr = err.Error()
			return
		}
		testPool = pool
	})

	if testPool == nil {
		t.Skipf("Skipping integration test: %s", testPoolErr)
	}
	truncateAll(t, testPool)
	return testPool
}

func truncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		TRUNCATE transactions, broadcasts, broadcast_queue, payment_monitoring,
			processed_transfers, admins, users RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}
