package broadcast

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BroadcasterPro_Go/internal/credits"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/metrics"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

// GuildNamer resolves a guild id to a display name
type GuildNamer interface {
	Name(ctx context.Context, guildID string) string
}

// SendResult is the outcome of an inline broadcast
type SendResult struct {
	DispatchResult
	BroadcastID int64  `json:"broadcast_id,omitempty"`
	GuildName   string `json:"guild_name"`
	CreditsUsed int    `json:"credits_used"`
}

// UserBroadcasts is a user's queue entries and finished broadcast history
type UserBroadcasts struct {
	Queue   []domain.QueueEntry `json:"queue"`
	History []domain.Broadcast  `json:"history"`
}

// Service defines broadcast operations for handlers and the queue worker
type Service interface {
	// SendNow bills, dispatches synchronously and records the broadcast.
	// Credits are refunded when the dispatch fails as a whole.
	SendNow(ctx context.Context, discordID string, req DispatchRequest) (*SendResult, error)
	// Enqueue bills and stores a pending queue entry for the worker
	Enqueue(ctx context.Context, discordID string, req DispatchRequest) (*domain.QueueEntry, error)
	// GetStatus returns a queue entry. Only the owner or an admin may read it.
	GetStatus(ctx context.Context, discordID string, id int64, isAdmin bool) (*domain.QueueEntry, error)
	GetUserBroadcasts(ctx context.Context, discordID string, limit int) (*UserBroadcasts, error)
	GetActive(ctx context.Context) ([]domain.QueueEntry, error)
	// ProcessNext claims and runs the oldest pending entry. It returns false when the queue is empty.
	ProcessNext(ctx context.Context) (bool, error)
	QueueDepth(ctx context.Context) (int, error)
}

// Notifier receives live events about a user's broadcasts
type Notifier interface {
	Publish(userID, eventType string, payload any)
}

// ProgressEvent is published after every member and once more when a broadcast ends
type ProgressEvent struct {
	// BroadcastID is the queue entry id, zero for inline sends
	BroadcastID int64              `json:"broadcast_id,omitempty"`
	Mode        string             `json:"mode"`
	GuildID     string             `json:"guild_id"`
	Status      domain.QueueStatus `json:"status"`
	Progress    int                `json:"progress"`
	Total       int                `json:"total_members"`
	Sent        int                `json:"sent_count"`
	Failed      int                `json:"failed_count"`
}

// Option configures the service
type Option func(*service)

// WithNotifier publishes progress events to n
func WithNotifier(n Notifier) Option {
	return func(s *service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithBaseContext ties inline dispatches to ctx instead of the request.
// Cancelling ctx, usually on server shutdown, stops them.
func WithBaseContext(ctx context.Context) Option {
	return func(s *service) {
		if ctx != nil {
			s.base = ctx
		}
	}
}

type noopNotifier struct{}

func (noopNotifier) Publish(string, string, any) {}

type service struct {
	base       context.Context
	notifier   Notifier
	dispatcher *Dispatcher
	credits    credits.Service
	queue      repository.Queue
	history    repository.Broadcast
	guilds     GuildNamer
	cost       int
}

// NewService creates a new broadcast service. cost is the credits charged per broadcast.
func NewService(dispatcher *Dispatcher, creditsSvc credits.Service, queue repository.Queue, history repository.Broadcast, guilds GuildNamer, cost int, opts ...Option) Service {
	if cost <= 0 {
		cost = 1
	}
	s := &service{
		base:       context.Background(),
		notifier:   noopNotifier{},
		dispatcher: dispatcher,
		credits:    creditsSvc,
		queue:      queue,
		history:    history,
		guilds:     guilds,
		cost:       cost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SendNow(ctx context.Context, discordID string, req DispatchRequest) (*SendResult, error) {
	req = normalize(req)
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	if _, err := s.credits.Spend(ctx, discordID, s.cost, fmt.Sprintf(DescBroadcastSpend, req.GuildID)); err != nil {
		return nil, err
	}

	req.OnProgress = s.progressPublisher(discordID, ProgressEvent{Mode: metrics.ModeInline, GuildID: req.GuildID}, req.OnProgress)

	// The broadcast is paid for, so a client disconnect must not cut it short
	runCtx, stop := s.detach(ctx)
	defer stop()

	result, err := s.dispatcher.Dispatch(runCtx, req)
	s.publishFinished(discordID, ProgressEvent{Mode: metrics.ModeInline, GuildID: req.GuildID}, result, err)
	if err != nil && result == nil {
		if _, refundErr := s.credits.Refund(context.WithoutCancel(runCtx), discordID, s.cost, DescRefundInline); refundErr != nil {
			log.Error(LogMsgRefundFailed, "discord_id", discordID, "error", refundErr)
		}
		metrics.BroadcastsTotal.WithLabelValues(metrics.ModeInline, metrics.OutcomeFailed).Inc()
		return nil, err
	}

	out := &SendResult{DispatchResult: *result, CreditsUsed: s.cost}
	out.GuildName = s.guilds.Name(runCtx, req.GuildID)
	record := &domain.Broadcast{
		UserID:         discordID,
		GuildID:        req.GuildID,
		GuildName:      out.GuildName,
		Message:        req.Message,
		TargetType:     req.TargetFilter,
		MessagesSent:   result.Sent,
		MessagesFailed: result.Failed,
		CreditsUsed:    s.cost,
	}
	if recErr := s.history.RecordBroadcast(context.WithoutCancel(runCtx), record); recErr != nil {
		log.Error(LogMsgRecordFailed, "discord_id", discordID, "error", recErr)
	} else {
		out.BroadcastID = record.ID
	}

	metrics.BroadcastsTotal.WithLabelValues(metrics.ModeInline, outcome(result)).Inc()
	// A cancelled dispatch keeps its partial counts and still reports the error.
	return out, err
}

func (s *service) Enqueue(ctx context.Context, discordID string, req DispatchRequest) (*domain.QueueEntry, error) {
	req = normalize(req)
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.credits.Spend(ctx, discordID, s.cost, fmt.Sprintf(DescBroadcastSpend, req.GuildID)); err != nil {
		return nil, err
	}

	entry := &domain.QueueEntry{
		UserID:         discordID,
		GuildID:        req.GuildID,
		Message:        req.Message,
		TargetType:     req.TargetFilter,
		DelaySeconds:   req.DelaySeconds,
		EnableMentions: req.EnableMentions,
		BotToken:       req.BotToken,
		CreditsUsed:    s.cost,
	}
	if err := s.queue.Enqueue(ctx, entry); err != nil {
		if _, refundErr := s.credits.Refund(context.WithoutCancel(ctx), discordID, s.cost, DescRefundQueue); refundErr != nil {
			logger.FromContext(ctx).Error(LogMsgRefundFailed, "discord_id", discordID, "error", refundErr)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	logger.FromContext(ctx).Info(LogMsgBroadcastQueued, "broadcast_id", entry.ID, "guild_id", entry.GuildID)
	return entry, nil
}

func (s *service) GetStatus(ctx context.Context, discordID string, id int64, isAdmin bool) (*domain.QueueEntry, error) {
	entry, err := s.queue.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != discordID && !isAdmin {
		// Other users' entries are reported as missing
		return nil, domain.ErrQueueEntryNotFound
	}
	return entry, nil
}

func (s *service) GetUserBroadcasts(ctx context.Context, discordID string, limit int) (*UserBroadcasts, error) {
	if limit <= 0 {
		limit = domain.DefaultBroadcastLimit
	}
	entries, err := s.queue.GetUserEntries(ctx, discordID, limit)
	if err != nil {
		return nil, err
	}
	history, err := s.history.GetUserBroadcasts(ctx, discordID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.QueueEntry{}
	}
	if history == nil {
		history = []domain.Broadcast{}
	}
	return &UserBroadcasts{Queue: entries, History: history}, nil
}

func (s *service) GetActive(ctx context.Context) ([]domain.QueueEntry, error) {
	entries, err := s.queue.GetActiveEntries(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.QueueEntry{}
	}
	return entries, nil
}

func (s *service) QueueDepth(ctx context.Context) (int, error) {
	return s.queue.CountPending(ctx)
}

func (s *service) ProcessNext(ctx context.Context) (bool, error) {
	entry, err := s.queue.ClaimNext(ctx)
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}
	return true, s.process(ctx, entry)
}

// process runs a claimed entry to a terminal state. Queue entries are never refunded.
func (s *service) process(ctx context.Context, entry *domain.QueueEntry) error {
	log := logger.FromContext(ctx).With("broadcast_id", entry.ID, "guild_id", entry.GuildID)
	// Terminal writes must land even when shutdown cancels ctx
	writeCtx := context.WithoutCancel(ctx)

	req := DispatchRequest{
		BotToken:       entry.BotToken,
		GuildID:        entry.GuildID,
		Message:        entry.Message,
		TargetFilter:   entry.TargetType,
		DelaySeconds:   entry.DelaySeconds,
		EnableMentions: entry.EnableMentions,
	}
	base := ProgressEvent{BroadcastID: entry.ID, Mode: metrics.ModeQueued, GuildID: entry.GuildID}
	req.OnProgress = s.progressPublisher(entry.UserID, base, func(p Progress) {
		if err := s.queue.UpdateProgress(writeCtx, entry.ID, domain.QueueProgress{
			Progress:     p.Percent(),
			TotalMembers: p.Total,
			SentCount:    p.Sent,
			FailedCount:  p.Failed,
		}); err != nil {
			log.Warn(LogMsgProgressFailed, "error", err)
		}
	})

	result, dispatchErr := s.dispatcher.Dispatch(ctx, req)
	s.publishFinished(entry.UserID, base, result, dispatchErr)
	final := domain.QueueResult{Status: domain.QueueStatusCompleted}
	if result != nil {
		final.TotalMembers, final.SentCount, final.FailedCount = result.Total, result.Sent, result.Failed
	}
	if dispatchErr != nil {
		final.Status = domain.QueueStatusFailed
		final.ErrorMessage = dispatchErr.Error()
	}

	if err := s.queue.Finish(writeCtx, entry.ID, final); err != nil {
		return fmt.Errorf("failed to finish broadcast %d: %w", entry.ID, err)
	}

	if final.Status == domain.QueueStatusFailed {
		metrics.BroadcastsTotal.WithLabelValues(metrics.ModeQueued, metrics.OutcomeFailed).Inc()
		log.Warn(LogMsgQueueEntryFailed, "error", dispatchErr)
		if errors.Is(dispatchErr, context.Canceled) {
			return dispatchErr
		}
		return nil
	}

	metrics.BroadcastsTotal.WithLabelValues(metrics.ModeQueued, outcome(result)).Inc()
	record := &domain.Broadcast{
		UserID:         entry.UserID,
		GuildID:        entry.GuildID,
		GuildName:      s.guilds.Name(ctx, entry.GuildID),
		Message:        entry.Message,
		TargetType:     entry.TargetType,
		MessagesSent:   result.Sent,
		MessagesFailed: result.Failed,
		CreditsUsed:    entry.CreditsUsed,
	}
	if err := s.history.RecordBroadcast(writeCtx, record); err != nil {
		log.Error(LogMsgRecordFailed, "error", err)
	}
	log.Info(LogMsgQueueEntryCompleted, "sent", result.Sent, "failed", result.Failed)
	return nil
}

// detach keeps ctx values but drops its cancellation. The returned context
// ends only when the service base context does or stop is called.
func (s *service) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	run, cancel := context.WithCancel(context.WithoutCancel(ctx))
	unregister := context.AfterFunc(s.base, cancel)
	return run, func() {
		unregister()
		cancel()
	}
}

// progressPublisher chains next with a progress event for userID
func (s *service) progressPublisher(userID string, base ProgressEvent, next func(Progress)) func(Progress) {
	return func(p Progress) {
		if next != nil {
			next(p)
		}
		ev := base
		ev.Status = domain.QueueStatusProcessing
		ev.Progress, ev.Total, ev.Sent, ev.Failed = p.Percent(), p.Total, p.Sent, p.Failed
		s.notifier.Publish(userID, EventBroadcastProgress, ev)
	}
}

func (s *service) publishFinished(userID string, base ProgressEvent, result *DispatchResult, err error) {
	ev := base
	ev.Status = domain.QueueStatusCompleted
	if err != nil {
		ev.Status = domain.QueueStatusFailed
	}
	ev.Progress = 100
	if result != nil {
		ev.Total, ev.Sent, ev.Failed = result.Total, result.Sent, result.Failed
	}
	s.notifier.Publish(userID, EventBroadcastFinished, ev)
}

func normalize(req DispatchRequest) DispatchRequest {
	if req.TargetFilter == "" {
		req.TargetFilter = domain.TargetAll
	}
	return req
}

func outcome(r *DispatchResult) string {
	if r.Aborted {
		return metrics.OutcomeAborted
	}
	return metrics.OutcomeCompleted
}
