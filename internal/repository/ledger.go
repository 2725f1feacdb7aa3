package repository

import (
	"context"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// Ledger defines the interface for credit balance and transaction persistence
type Ledger interface {
	BeginTx(ctx context.Context) (LedgerTx, error)
	GetTransactions(ctx context.Context, discordID string, limit int) ([]domain.Transaction, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
	// LedgerSum returns purchases plus refunds minus spends for a user
	LedgerSum(ctx context.Context, discordID string) (int, error)
}

// LedgerTx is a unit of work over a single user's balance
type LedgerTx interface {
	Tx
	// EnsureUser creates a placeholder user when none exists
	EnsureUser(ctx context.Context, discordID, username string) error
	// Debit subtracts amount only if the balance covers it and adds it to total_spent.
	// It returns false without changing anything when the balance is too low.
	Debit(ctx context.Context, discordID string, amount int) (bool, error)
	// Credit adds amount to the balance. When reverseSpend is set, total_spent is
	// reduced by the same amount (not below zero).
	Credit(ctx context.Context, discordID string, amount int, reverseSpend bool) error
	GetBalance(ctx context.Context, discordID string) (int, error)
	InsertTransaction(ctx context.Context, txn *domain.Transaction) error
	// MarkTransfer records a ProBot message id. It returns false if it was already recorded.
	MarkTransfer(ctx context.Context, transfer domain.ProBotTransfer) (bool, error)
}
