// Package credits keeps the per-user credit balance and its append-only ledger.
// Every balance change and its ledger row are written in one transaction.
package credits

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/metrics"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

// Wallet is a user's balance summary plus recent ledger rows
type Wallet struct {
	Stats        domain.UserStats     `json:"stats"`
	Transactions []domain.Transaction `json:"transactions"`
}

// Service defines the credit ledger operations
type Service interface {
	// Add credits a user, creating a placeholder account if needed. source labels the metric.
	Add(ctx context.Context, discordID string, amount int, description, externalRef, source string) (*domain.Transaction, error)
	// AddTransfer credits the payer of a ProBot transfer and records its message id in the
	// same transaction. It fails with domain.ErrTransferAlreadyProcessed on a repeat.
	AddTransfer(ctx context.Context, transfer domain.ProBotTransfer, amount int, description string) (*domain.Transaction, error)
	// Spend debits a user and fails with domain.ErrInsufficientCredits when the balance is too low
	Spend(ctx context.Context, discordID string, amount int, description string) (*domain.Transaction, error)
	// Refund returns credits from an earlier spend
	Refund(ctx context.Context, discordID string, amount int, description string) (*domain.Transaction, error)
	GetWallet(ctx context.Context, discordID string, limit int) (*Wallet, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
	Reconcile(ctx context.Context, discordID string) (*domain.Reconciliation, error)
}

type service struct {
	ledger repository.Ledger
	users  repository.User
}

// NewService creates a new credits service
func NewService(ledger repository.Ledger, users repository.User) Service {
	return &service{ledger: ledger, users: users}
}

func (s *service) Add(ctx context.Context, discordID string, amount int, description, externalRef, source string) (*domain.Transaction, error) {
	if err := validate(discordID, amount); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		UserID:      discordID,
		Type:        domain.TransactionPurchase,
		Amount:      amount,
		Description: description,
		ExternalRef: externalRef,
	}
	err := s.withTx(ctx, func(tx repository.LedgerTx) error {
		return grant(ctx, tx, txn)
	})
	if err != nil {
		return nil, err
	}

	metrics.CreditsGranted.WithLabelValues(source).Add(float64(amount))
	logger.FromContext(ctx).Info(LogMsgCreditsAdded, "discord_id", discordID, "amount", amount, "source", source)
	return txn, nil
}

func (s *service) AddTransfer(ctx context.Context, transfer domain.ProBotTransfer, amount int, description string) (*domain.Transaction, error) {
	if err := validate(transfer.PayerID, amount); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		UserID:      transfer.PayerID,
		Type:        domain.TransactionPurchase,
		Amount:      amount,
		Description: description,
		ExternalRef: transfer.MessageID,
	}
	err := s.withTx(ctx, func(tx repository.LedgerTx) error {
		fresh, err := tx.MarkTransfer(ctx, transfer)
		if err != nil {
			return err
		}
		if !fresh {
			return domain.ErrTransferAlreadyProcessed
		}
		return grant(ctx, tx, txn)
	})
	if err != nil {
		return nil, err
	}

	metrics.CreditsGranted.WithLabelValues(metrics.SourceProBot).Add(float64(amount))
	logger.FromContext(ctx).Info(LogMsgCreditsAdded,
		"discord_id", transfer.PayerID, "amount", amount, "source", metrics.SourceProBot, "message_id", transfer.MessageID)
	return txn, nil
}

// grant creates the account if needed, credits it and appends the purchase row
func grant(ctx context.Context, tx repository.LedgerTx, txn *domain.Transaction) error {
	if err := tx.EnsureUser(ctx, txn.UserID, domain.UnknownUsername); err != nil {
		return err
	}
	if err := tx.Credit(ctx, txn.UserID, txn.Amount, false); err != nil {
		return err
	}
	return tx.InsertTransaction(ctx, txn)
}

func (s *service) Spend(ctx context.Context, discordID string, amount int, description string) (*domain.Transaction, error) {
	if err := validate(discordID, amount); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		UserID:      discordID,
		Type:        domain.TransactionSpend,
		Amount:      amount,
		Description: description,
	}
	err := s.withTx(ctx, func(tx repository.LedgerTx) error {
		balance, err := tx.GetBalance(ctx, discordID)
		if err != nil {
			return err
		}
		ok, err := tx.Debit(ctx, discordID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientCredits, amount, balance)
		}
		return tx.InsertTransaction(ctx, txn)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCredits) {
			logger.FromContext(ctx).Info(LogMsgInsufficient, "discord_id", discordID, "amount", amount)
		}
		return nil, err
	}

	metrics.CreditsSpent.Add(float64(amount))
	logger.FromContext(ctx).Info(LogMsgCreditsSpent, "discord_id", discordID, "amount", amount)
	return txn, nil
}

func (s *service) Refund(ctx context.Context, discordID string, amount int, description string) (*domain.Transaction, error) {
	if err := validate(discordID, amount); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		UserID:      discordID,
		Type:        domain.TransactionRefund,
		Amount:      amount,
		Description: description,
	}
	err := s.withTx(ctx, func(tx repository.LedgerTx) error {
		if err := tx.Credit(ctx, discordID, amount, true); err != nil {
			return err
		}
		return tx.InsertTransaction(ctx, txn)
	})
	if err != nil {
		return nil, err
	}

	metrics.CreditsRefunded.Add(float64(amount))
	logger.FromContext(ctx).Info(LogMsgCreditsRefunded, "discord_id", discordID, "amount", amount)
	return txn, nil
}

func (s *service) GetWallet(ctx context.Context, discordID string, limit int) (*Wallet, error) {
	limit = clampLimit(limit)

	stats, err := s.users.GetUserStats(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUserStats, err)
	}
	txns, err := s.ledger.GetTransactions(ctx, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetTransactions, err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return &Wallet{Stats: *stats, Transactions: txns}, nil
}

func (s *service) GetRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	txns, err := s.ledger.GetRecentTransactions(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetTransactions, err)
	}
	return txns, nil
}

// Reconcile compares purchases plus refunds minus spends with the stored balance
func (s *service) Reconcile(ctx context.Context, discordID string) (*domain.Reconciliation, error) {
	if !domain.IsValidDiscordID(discordID) {
		return nil, domain.ErrInvalidDiscordID
	}
	stats, err := s.users.GetUserStats(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUserStats, err)
	}
	sum, err := s.ledger.LedgerSum(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgComputeLedgerSum, err)
	}

	rec := &domain.Reconciliation{
		DiscordID:  discordID,
		Balance:    stats.Credits,
		LedgerSum:  sum,
		Difference: stats.Credits - sum,
		Balanced:   stats.Credits == sum,
	}
	if !rec.Balanced {
		logger.FromContext(ctx).Warn(LogMsgLedgerMismatch, "discord_id", discordID, "balance", rec.Balance, "ledger_sum", sum)
	}
	return rec, nil
}

func (s *service) withTx(ctx context.Context, fn func(tx repository.LedgerTx) error) error {
	tx, err := s.ledger.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}
	return nil
}

func validate(discordID string, amount int) error {
	if !domain.IsValidDiscordID(discordID) {
		return domain.ErrInvalidDiscordID
	}
	if amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultTransactionLimit
	}
	if limit > domain.MaxTransactionLimit {
		return domain.MaxTransactionLimit
	}
	return limit
}
