package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BroadcasterPro_Go/internal/worker"
)

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(context.Background(), 1, 10, time.Second)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	done := make(chan struct{}, 10)
	var runs atomic.Int32
	sched.Schedule(10*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
		runs.Add(1)
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}))

	timeout := time.After(time.Second)
	for seen := 0; seen < 2; seen++ {
		select {
		case <-done:
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	pool := worker.NewPool(context.Background(), 1, 1, time.Second)
	sched := New(pool)
	sched.Schedule(time.Hour, worker.JobFunc(func(context.Context) error { return nil }))

	sched.Stop()
	assert.NotPanics(t, sched.Stop)
}
