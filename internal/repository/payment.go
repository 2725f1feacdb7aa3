package repository

import (
	"context"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// Payment defines the interface for payment monitoring requests
type Payment interface {
	CreatePaymentRequest(ctx context.Context, discordID string, expectedAmount int, expiresAt time.Time) (*domain.PaymentRequest, error)
	GetPaymentRequest(ctx context.Context, id int64) (*domain.PaymentRequest, error)
	// MarkReceived flags the oldest unexpired waiting request of the user whose
	// expected amount is covered by amount. It returns nil, nil when none matches.
	MarkReceived(ctx context.Context, discordID string, amount int, at time.Time) (*domain.PaymentRequest, error)
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}
