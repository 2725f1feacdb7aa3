package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BroadcasterPro_Go/internal/database/generated"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

type ledgerRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewLedgerRepository creates a new PostgreSQL credit ledger repository
func NewLedgerRepository(db *pgxpool.Pool) repository.Ledger {
	return &ledgerRepository{db: db, q: generated.New(db)}
}

// BeginTx starts a ledger unit of work
func (r *ledgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &ledgerTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

func (r *ledgerRepository) GetTransactions(ctx context.Context, discordID string, limit int) ([]domain.Transaction, error) {
	rows, err := r.q.GetUserTransactions(ctx, generated.GetUserTransactionsParams{
		UserID: discordID,
		Limit:  int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return mapTransactions(rows), nil
}

func (r *ledgerRepository) GetRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	rows, err := r.q.GetRecentTransactions(ctx, int32(limit))
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

// ledgerTx wraps pgx.Tx to implement repository.LedgerTx
type ledgerTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *ledgerTx) EnsureUser(ctx context.Context, discordID, username string) error {
	err := t.q.EnsureUser(ctx, generated.EnsureUserParams{DiscordID: discordID, Username: username})
	if err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

// Debit is a single conditional update so concurrent spends can never drive the balance negative
func (t *ledgerTx) Debit(ctx context.Context, discordID string, amount int) (bool, error) {
	n, err := t.q.DebitCredits(ctx, generated.DebitCreditsParams{Amount: int32(amount), DiscordID: discordID})
	if err != nil {
		if isPgError(err, PgErrorCodeCheckViolation) {
			return false, nil
		}
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
		n, err = t.q.CreditUserReverseSpend(ctx, generated.CreditUserReverseSpendParams{Amount: int32(amount), DiscordID: discordID})
	} else {
		n, err = t.q.CreditUser(ctx, generated.CreditUserParams{Amount: int32(amount), DiscordID: discordID})
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
		if errors.Is(err, pgx.ErrNoRows) {
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
	row, err := t.q.InsertTransaction(ctx, generated.InsertTransactionParams{
		UserID:      txn.UserID,
		Type:        string(txn.Type),
		Amount:      int32(txn.Amount),
		Description: txn.Description,
		ExternalRef: textOrNull(txn.ExternalRef),
		Status:      txn.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	txn.ID, txn.CreatedAt = row.ID, row.CreatedAt.Time
	return nil
}

// MarkTransfer records a ProBot message id inside the ledger transaction,
// so the marker and the credit grant commit or roll back together
func (t *ledgerTx) MarkTransfer(ctx context.Context, transfer domain.ProBotTransfer) (bool, error) {
	n, err := t.q.MarkTransferProcessed(ctx, generated.MarkTransferProcessedParams{
		MessageID: transfer.MessageID,
		PayerID:   transfer.PayerID,
		Amount:    int32(transfer.Amount),
	})
	if err != nil {
		return false, fmt.Errorf("failed to record processed transfer: %w", err)
	}
	return n == 1, nil
}
