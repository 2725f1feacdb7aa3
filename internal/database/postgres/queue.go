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

type queueRepository struct {
	q *generated.Queries
}

// NewQueueRepository creates a new PostgreSQL broadcast queue repository
func NewQueueRepository(db *pgxpool.Pool) repository.Queue {
	return &queueRepository{q: generated.New(db)}
}

func (r *queueRepository) Enqueue(ctx context.Context, e *domain.QueueEntry) error {
	row, err := r.q.EnqueueBroadcast(ctx, generated.EnqueueBroadcastParams{
		UserID:         e.UserID,
		GuildID:        e.GuildID,
		Message:        e.Message,
		TargetType:     string(e.TargetType),
		DelaySeconds:   int32(e.DelaySeconds),
		EnableMentions: e.EnableMentions,
		BotToken:       e.BotToken,
		CreditsUsed:    int32(e.CreditsUsed),
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue broadcast: %w", err)
	}
	e.ID = row.ID
	e.Status = domain.QueueStatus(row.Status)
	e.CreatedAt = row.CreatedAt.Time
	return nil
}

// ClaimNext uses SKIP LOCKED so several workers can poll the same table
func (r *queueRepository) ClaimNext(ctx context.Context) (*domain.QueueEntry, error) {
	row, err := r.q.ClaimNextQueueEntry(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim queue entry: %w", err)
	}
	return mapQueueEntry(row), nil
}

func (r *queueRepository) UpdateProgress(ctx context.Context, id int64, p domain.QueueProgress) error {
	err := r.q.UpdateQueueProgress(ctx, generated.UpdateQueueProgressParams{
		ID:           id,
		Progress:     int32(p.Progress),
		TotalMembers: int32(p.TotalMembers),
		SentCount:    int32(p.SentCount),
		FailedCount:  int32(p.FailedCount),
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

	n, err := r.q.FinishQueueEntry(ctx, generated.FinishQueueEntryParams{
		ID:           id,
		Status:       string(res.Status),
		TotalMembers: int32(res.TotalMembers),
		SentCount:    int32(res.SentCount),
		FailedCount:  int32(res.FailedCount),
		ErrorMessage: res.ErrorMessage,
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQueueEntryNotFound
		}
		return nil, fmt.Errorf("failed to get queue entry: %w", err)
	}
	return mapQueueEntry(row), nil
}

func (r *queueRepository) GetUserEntries(ctx context.Context, discordID string, limit int) ([]domain.QueueEntry, error) {
	rows, err := r.q.GetUserQueueEntries(ctx, generated.GetUserQueueEntriesParams{
		UserID: discordID,
		Limit:  int32(limit),
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
