package repository

import (
	"context"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// Admin defines the interface for the admin role table
type Admin interface {
	IsAdmin(ctx context.Context, discordID string) (bool, error)
	AddAdmin(ctx context.Context, discordID, grantedBy string) error
	RemoveAdmin(ctx context.Context, discordID string) error
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
}
