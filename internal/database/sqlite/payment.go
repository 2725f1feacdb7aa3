package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/database/sqlitegen"
	"github.com/osse101/BroadcasterPro_Go/internal/database/sqltime"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

type paymentRepository struct {
	q *sqlitegen.Queries
}

// NewPaymentRepository creates a new SQLite payment monitoring repository
func NewPaymentRepository(db *sql.DB) repository.Payment {
	return &paymentRepository{q: sqlitegen.New(db)}
}

func (r *paymentRepository) CreatePaymentRequest(ctx context.Context, discordID string, expectedAmount int, expiresAt time.Time) (*domain.PaymentRequest, error) {
	row, err := r.q.CreatePaymentRequest(ctx, sqlitegen.CreatePaymentRequestParams{
		UserID:         discordID,
		ExpectedAmount: int64(expectedAmount),
		ExpiresAt:      sqltime.From(expiresAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}
	return mapPayment(row), nil
}

func (r *paymentRepository) GetPaymentRequest(ctx context.Context, id int64) (*domain.PaymentRequest, error) {
	row, err := r.q.GetPaymentRequest(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment request: %w", err)
	}
	return mapPayment(row), nil
}

func (r *paymentRepository) MarkReceived(ctx context.Context, discordID string, amount int, at time.Time) (*domain.PaymentRequest, error) {
	row, err := r.q.MarkPaymentReceived(ctx, sqlitegen.MarkPaymentReceivedParams{
		ReceivedAt: sqltime.From(at),
		UserID:     discordID,
		Amount:     int64(amount),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to mark payment received: %w", err)
	}
	return mapPayment(row), nil
}

func (r *paymentRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.q.ExpirePaymentRequests(ctx, sqltime.From(now))
	if err != nil {
		return 0, fmt.Errorf("failed to expire payment requests: %w", err)
	}
	return n, nil
}
