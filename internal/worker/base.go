package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// BaseWorker runs one background loop and stops it on Shutdown
type BaseWorker struct {
	name     string
	shutdown chan struct{}
	once     sync.Once
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func newBaseWorker(name string) BaseWorker {
	return BaseWorker{name: name, shutdown: make(chan struct{})}
}

// run starts loop in a goroutine. The loop context outlives parent's
// cancellation and is only cancelled when Shutdown gives up waiting.
func (w *BaseWorker) run(parent context.Context, loop func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer cancel()
		logger.FromContext(ctx).Info(LogMsgWorkerStarted, "worker", w.name)
		loop(ctx)
	}()
}

// stopping is closed when Shutdown is called
func (w *BaseWorker) stopping() <-chan struct{} {
	return w.shutdown
}

// Shutdown signals the loop to stop and waits for the current iteration.
// If ctx expires first, the iteration's context is cancelled and Shutdown returns ctx.Err().
func (w *BaseWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkerStopping, "worker", w.name)
	w.once.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerStopped, "worker", w.name)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout, "worker", w.name)
		if w.cancel != nil {
			w.cancel()
		}
		<-done
		return ctx.Err()
	}
}

// wait sleeps for d unless the worker is stopping. It reports whether to continue.
func (w *BaseWorker) wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-w.shutdown:
		return false
	case <-ctx.Done():
		return false
	}
}
