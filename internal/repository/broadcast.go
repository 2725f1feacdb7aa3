package repository

import (
	"context"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// Broadcast defines the interface for finished broadcast records
type Broadcast interface {
	RecordBroadcast(ctx context.Context, b *domain.Broadcast) error
	GetUserBroadcasts(ctx context.Context, discordID string, limit int) ([]domain.Broadcast, error)
}

// Queue defines the interface for the broadcast queue table
type Queue interface {
	Enqueue(ctx context.Context, entry *domain.QueueEntry) error
	// ClaimNext atomically moves the oldest pending entry to processing.
	// It returns nil, nil when nothing is pending.
	ClaimNext(ctx context.Context) (*domain.QueueEntry, error)
	UpdateProgress(ctx context.Context, id int64, p domain.QueueProgress) error
	// Finish moves a processing entry to completed or failed.
	// It returns domain.ErrInvalidTransition if the entry is not processing.
	Finish(ctx context.Context, id int64, result domain.QueueResult) error
	GetEntry(ctx context.Context, id int64) (*domain.QueueEntry, error)
	GetUserEntries(ctx context.Context, discordID string, limit int) ([]domain.QueueEntry, error)
	GetActiveEntries(ctx context.Context) ([]domain.QueueEntry, error)
	CountPending(ctx context.Context) (int, error)
}
