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

type userRepository struct {
	q *generated.Queries
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &userRepository{q: generated.New(db)}
}

// UpsertUser inserts a new user or refreshes the profile of an existing one
func (r *userRepository) UpsertUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	row, err := r.q.UpsertUser(ctx, generated.UpsertUserParams{
		DiscordID:     user.DiscordID,
		Username:      user.Username,
		Discriminator: user.Discriminator,
		Avatar:        user.Avatar,
		Email:         user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return mapUser(row), nil
}

func (r *userRepository) GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	row, err := r.q.GetUserByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mapUser(row), nil
}

func (r *userRepository) GetUserStats(ctx context.Context, discordID string) (*domain.UserStats, error) {
	row, err := r.q.GetUserStats(ctx, discordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &domain.UserStats{
		Credits:           int(row.Credits),
		TotalSpent:        int(row.TotalSpent),
		TotalBroadcasts:   int(row.TotalBroadcasts),
		TotalMessagesSent: int(row.TotalMessagesSent),
	}, nil
}
