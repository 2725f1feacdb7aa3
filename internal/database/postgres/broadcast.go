package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BroadcasterPro_Go/internal/database/generated"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

type broadcastRepository struct {
	q *generated.Queries
}

// NewBroadcastRepository creates a new PostgreSQL broadcast history repository
func NewBroadcastRepository(db *pgxpool.Pool) repository.Broadcast {
	return &broadcastRepository{q: generated.New(db)}
}

func (r *broadcastRepository) RecordBroadcast(ctx context.Context, b *domain.Broadcast) error {
	row, err := r.q.RecordBroadcast(ctx, generated.RecordBroadcastParams{
		UserID:         b.UserID,
		GuildID:        b.GuildID,
		GuildName:      b.GuildName,
		Message:        b.Message,
		TargetType:     string(b.TargetType),
		MessagesSent:   int32(b.MessagesSent),
		MessagesFailed: int32(b.MessagesFailed),
		CreditsUsed:    int32(b.CreditsUsed),
	})
	if err != nil {
		return fmt.Errorf("failed to record broadcast: %w", err)
	}
	b.ID, b.CreatedAt = row.ID, row.CreatedAt.Time
	return nil
}

func (r *broadcastRepository) GetUserBroadcasts(ctx context.Context, discordID string, limit int) ([]domain.Broadcast, error) {
	rows, err := r.q.GetUserBroadcasts(ctx, generated.GetUserBroadcastsParams{
		UserID: discordID,
		Limit:  int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query broadcasts: %w", err)
	}
	return mapBroadcasts(rows), nil
}
