package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/BroadcasterPro_Go/internal/database/sqlitegen"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
	q  *sqlitegen.Queries
}

// NewLedgerRepository creates a new SQLite credit ledger repository
func NewLedgerRepository(db *sql.DB) repository.Ledger {
	return &ledgerRepository{db: db, q: sqlitegen.New(db)}
}

func (r *ledgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &ledgerTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

func (r *ledgerRepository) GetTransactions(ctx context.Context, discordID string, limit int) ([]domain.Transaction, error) {
	rows, err := r.q.GetUserTransactions(ctx, sqlitegen.GetUserTransactionsParams{
		UserID: discordID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return mapTransactions(rows), nil
}

func (r *ledgerRepository) GetRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	rows, err := r.q.GetRecentTransactions(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	return mapTransactions(rows), nil
}

func (r *ledgerRepository) LedgerSum(ctx context.Context, discordID string) (int, error) {
	sum, err := r.q.LedgerSum(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum ledger: %w", err)
	}
	return int(sum), nil
}

// ledgerTx wraps *sql.Tx to implement repository.LedgerTx.
// sql.Tx has no context on Commit/Rollback, so the ctx arguments are ignored there.
type ledgerTx struct {
	tx *sql.Tx
	q  *sqlitegen.Queries
}

func (t *ledgerTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t *ledgerTx) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}

func (t *ledgerTx) EnsureUser(ctx context.Context, discordID, username string) error {
	err := t.q.EnsureUser(ctx, sqlitegen.EnsureUserParams{DiscordID: discordID, Username: username})
	if err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

func (t *ledgerTx) Debit(ctx context.Context, discordID string, amount int) (bool, error) {
	n, err := t.q.DebitCredits(ctx, sqlitegen.DebitCreditsParams{Amount: int64(amount), DiscordID: discordID})
	if err != nil {
		return false, fmt.Errorf("failed to debit credits: %w", err)
	}
	return n == 1, nil
}

func (t *ledgerTx) Credit(ctx context.Context, discordID string, amount int, reverseSpend bool) error {
	var (
		n   int64
		err error
	)
	if reverseSpend {
		n, err = t.q.CreditUserReverseSpend(ctx, sqlitegen.CreditUserReverseSpendParams{Amount: int64(amount), DiscordID: discordID})
	} else {
		n, err = t.q.CreditUser(ctx, sqlitegen.CreditUserParams{Amount: int64(amount), DiscordID: discordID})
	}
	if err != nil {
		return fmt.Errorf("failed to credit user: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (t *ledgerTx) GetBalance(ctx context.Context, discordID string) (int, error) {
	credits, err := t.q.GetBalance(ctx, discordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return int(credits), nil
}

func (t *ledgerTx) InsertTransaction(ctx context.Context, txn *domain.Transaction) error {
	if txn.Status == "" {
		txn.Status = domain.TransactionStatusCompleted
	}
	row, err := t.q.InsertTransaction(ctx, sqlitegen.InsertTransactionParams{
		UserID:      txn.UserID,
		Type:        string(txn.Type),
		Amount:      int64(txn.Amount),
		Description: txn.Description,
		ExternalRef: nullIfEmpty(txn.ExternalRef),
		Status:      txn.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	txn.ID, txn.CreatedAt = row.ID, row.CreatedAt.Time
	return nil
}

func (t *ledgerTx) MarkTransfer(ctx context.Context, transfer domain.ProBotTransfer) (bool, error) {
	n, err := t.q.MarkTransferProcessed(ctx, sqlitegen.MarkTransferProcessedParams{
		MessageID: transfer.MessageID,
		PayerID:   transfer.PayerID,
		Amount:    int64(transfer.Amount),
	})
	if err != nil {
		return false, fmt.Errorf("failed to record processed transfer: %w", err)
	}
	return n == 1, nil
}
