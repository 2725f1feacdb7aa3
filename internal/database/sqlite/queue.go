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

type queueRepository struct {
	q *sqlitegen.Queries
}

// NewQueueRepository creates a new SQLite broadcast queue repository
func NewQueueRepository(db *sql.DB) repository.Queue {
	return &queueRepository{q: sqlitegen.New(db)}
}

func (r *queueRepository) Enqueue(ctx context.Context, e *domain.QueueEntry) error {
	row, err := r.q.EnqueueBroadcast(ctx, sqlitegen.EnqueueBroadcastParams{
		UserID:         e.UserID,
		GuildID:        e.GuildID,
		Message:        e.Message,
		TargetType:     string(e.TargetType),
		DelaySeconds:   int64(e.DelaySeconds),
		EnableMentions: e.EnableMentions,
		BotToken:       e.BotToken,
		CreditsUsed:    int64(e.CreditsUsed),
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue broadcast: %w", err)
	}
	e.ID = row.ID
	e.Status = domain.QueueStatus(row.Status)
	e.CreatedAt = row.CreatedAt.Time
	return nil
}

// ClaimNext is a single UPDATE; SQLite's writer lock makes it exclusive
func (r *queueRepository) ClaimNext(ctx context.Context) (*domain.QueueEntry, error) {
	row, err := r.q.ClaimNextQueueEntry(ctx, sqltime.From(time.Now()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim queue entry: %w", err)
	}
	return mapQueueEntry(row), nil
}

func (r *queueRepository) UpdateProgress(ctx context.Context, id int64, p domain.QueueProgress) error {
	err := r.q.UpdateQueueProgress(ctx, sqlitegen.UpdateQueueProgressParams{
		Progress:     int64(p.Progress),
		TotalMembers: int64(p.TotalMembers),
		SentCount:    int64(p.SentCount),
		FailedCount:  int64(p.FailedCount),
		ID:           id,
	})
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

func (r *queueRepository) Finish(ctx context.Context, id int64, res domain.QueueResult) error {
	if !domain.QueueStatusProcessing.CanTransitionTo(res.Status) {
		return fmt.Errorf("%w: processing -> %s", domain.ErrInvalidTransition, res.Status)
	}

	n, err := r.q.FinishQueueEntry(ctx, sqlitegen.FinishQueueEntryParams{
		Status:       string(res.Status),
		TotalMembers: int64(res.TotalMembers),
		SentCount:    int64(res.SentCount),
		FailedCount:  int64(res.FailedCount),
		ErrorMessage: res.ErrorMessage,
		CompletedAt:  sqltime.From(time.Now()),
		ID:           id,
	})
	if err != nil {
		return fmt.Errorf("failed to finish queue entry: %w", err)
	}
	if n == 0 {
		current, err := r.GetEntry(ctx, id)
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, res.Status)
	}
	return nil
}

func (r *queueRepository) GetEntry(ctx context.Context, id int64) (*domain.QueueEntry, error) {
	row, err := r.q.GetQueueEntry(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQueueEntryNotFound
		}
		return nil, fmt.Errorf("failed to get queue entry: %w", err)
	}
	return mapQueueEntry(row), nil
}

func (r *queueRepository) GetUserEntries(ctx context.Context, discordID string, limit int) ([]domain.QueueEntry, error) {
	rows, err := r.q.GetUserQueueEntries(ctx, sqlitegen.GetUserQueueEntriesParams{
		UserID: discordID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query queue entries: %w", err)
	}
	return mapQueueEntries(rows), nil
}

func (r *queueRepository) GetActiveEntries(ctx context.Context) ([]domain.QueueEntry, error) {
	rows, err := r.q.GetActiveQueueEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active queue entries: %w", err)
	}
	return mapQueueEntries(rows), nil
}

func (r *queueRepository) CountPending(ctx context.Context) (int, error) {
	n, err := r.q.CountPendingQueueEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending: %w", err)
	}
	return int(n), nil
}
