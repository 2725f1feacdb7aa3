package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BroadcasterPro_Go/internal/database/generated"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

type paymentRepository struct {
	q *generated.Queries
}

// NewPaymentRepository creates a new PostgreSQL payment monitoring repository
func NewPaymentRepository(db *pgxpool.Pool) repository.Payment {
	return &paymentRepository{q: generated.New(db)}
}

func (r *paymentRepository) CreatePaymentRequest(ctx context.Context, discordID string, expectedAmount int, expiresAt time.Time) (*domain.PaymentRequest, error) {
	row, err := r.q.CreatePaymentRequest(ctx, generated.CreatePaymentRequestParams{
		UserID:         discordID,
		ExpectedAmount: int32(expectedAmount),
		ExpiresAt:      timeToPgtimetz(&expiresAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}
	return mapPayment(row), nil
}

func (r *paymentRepository) GetPaymentRequest(ctx context.Context, id int64) (*domain.PaymentRequest, error) {
	row, err := r.q.GetPaymentRequest(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment request: %w", err)
	}
	return mapPayment(row), nil
}

func (r *paymentRepository) MarkReceived(ctx context.Context, discordID string, amount int, at time.Time) (*domain.PaymentRequest, error) {
	row, err := r.q.MarkPaymentReceived(ctx, generated.MarkPaymentReceivedParams{
		ReceivedAt: timeToPgtimetz(&at),
		UserID:     discordID,
		Amount:     int32(amount),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to mark payment received: %w", err)
	}
	return mapPayment(row), nil
}

func (r *paymentRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.q.ExpirePaymentRequests(ctx, timeToPgtimetz(&now))
	if err != nil {
		return 0, fmt.Errorf("failed to expire payment requests: %w", err)
	}
	return n, nil
}
