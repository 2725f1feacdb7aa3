package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error other than "already closed".
// Both pgx and database/sql report a committed transaction differently, so both are ignored.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) || errors.Is(err, sql.ErrTxDone) {
			return
		}
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
