package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/BroadcasterPro_Go/internal/database/sqlitegen"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

type broadcastRepository struct {
	q *sqlitegen.Queries
}

// NewBroadcastRepository creates a new SQLite broadcast history repository
func NewBroadcastRepository(db *sql.DB) repository.Broadcast {
	return &broadcastRepository{q: sqlitegen.New(db)}
}

func (r *broadcastRepository) RecordBroadcast(ctx context.Context, b *domain.Broadcast) error {
	row, err := r.q.RecordBroadcast(ctx, sqlitegen.RecordBroadcastParams{
		UserID:         b.UserID,
		GuildID:        b.GuildID,
		GuildName:      b.GuildName,
		Message:        b.Message,
		TargetType:     string(b.TargetType),
		MessagesSent:   int64(b.MessagesSent),
		MessagesFailed: int64(b.MessagesFailed),
		CreditsUsed:    int64(b.CreditsUsed),
	})
	if err != nil {
		return fmt.Errorf("failed to record broadcast: %w", err)
	}
	b.ID, b.CreatedAt = row.ID, row.CreatedAt.Time
	return nil
}

func (r *broadcastRepository) GetUserBroadcasts(ctx context.Context, discordID string, limit int) ([]domain.Broadcast, error) {
	rows, err := r.q.GetUserBroadcasts(ctx, sqlitegen.GetUserBroadcastsParams{
		UserID: discordID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query broadcasts: %w", err)
	}
	return mapBroadcasts(rows), nil
}
