package repository

import (
	"context"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// UpsertUser inserts the user or refreshes profile fields of an existing row.
	// Credits and total_spent are never touched.
	UpsertUser(ctx context.Context, user *domain.User) (*domain.User, error)
	// GetUserByDiscordID returns nil, nil when the user does not exist
	GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error)
	GetUserStats(ctx context.Context, discordID string) (*domain.UserStats, error)
}
