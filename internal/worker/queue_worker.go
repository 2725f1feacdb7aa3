package worker

import (
	"context"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/broadcast"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/metrics"
)

// QueueWorker polls the broadcast queue and runs one entry at a time
type QueueWorker struct {
	BaseWorker
	svc          broadcast.Service
	pollInterval time.Duration
	errorBackoff time.Duration
}

// NewQueueWorker creates a queue poller. It sleeps pollInterval when the queue
// is empty and errorBackoff after a failure.
func NewQueueWorker(svc broadcast.Service, pollInterval, errorBackoff time.Duration) *QueueWorker {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if errorBackoff <= 0 {
		errorBackoff = DefaultErrorBackoff
	}
	return &QueueWorker{
		BaseWorker:   newBaseWorker("broadcast-queue"),
		svc:          svc,
		pollInterval: pollInterval,
		errorBackoff: errorBackoff,
	}
}

// Start begins polling in the background
func (w *QueueWorker) Start(ctx context.Context) {
	w.run(ctx, w.loop)
}

func (w *QueueWorker) loop(ctx context.Context) {
	for {
		select {
		case <-w.stopping():
			return
		default:
		}

		next := w.poll(ctx)
		if next > 0 && !w.wait(ctx, next) {
			return
		}
	}
}

// poll processes at most one entry and returns how long to wait before the next poll
func (w *QueueWorker) poll(ctx context.Context) time.Duration {
	log := logger.FromContext(ctx)

	processed, err := w.svc.ProcessNext(ctx)
	w.refreshDepth(ctx)
	if err != nil {
		log.Error(LogMsgQueueProcessFailed, "error", err)
		return w.errorBackoff
	}
	if !processed {
		return w.pollInterval
	}
	return 0
}

func (w *QueueWorker) refreshDepth(ctx context.Context) {
	depth, err := w.svc.QueueDepth(context.WithoutCancel(ctx))
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgQueueDepthFailed, "error", err)
		return
	}
	metrics.QueueDepth.Set(float64(depth))
}
