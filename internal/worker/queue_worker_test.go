package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BroadcasterPro_Go/internal/testing/leaktest"
	"github.com/osse101/BroadcasterPro_Go/mocks"
)

func TestQueueWorkerPoll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		processed bool
		err       error
		want      time.Duration
	}{
		{"processed entry polls again immediately", true, nil, 0},
		{"empty queue waits poll interval", false, nil, 50 * time.Millisecond},
		{"error waits backoff", false, errors.New("db down"), 100 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockBroadcastService(t)
			svc.On("ProcessNext", ctx).Return(tt.processed, tt.err).Once()
			svc.On("QueueDepth", mock.Anything).Return(3, nil).Once()

			w := NewQueueWorker(svc, 50*time.Millisecond, 100*time.Millisecond)
			assert.Equal(t, tt.want, w.poll(ctx))
		})
	}
}

func TestQueueWorkerRunsUntilShutdown(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	svc := mocks.NewMockBroadcastService(t)
	polled := make(chan struct{}, 10)
	svc.On("ProcessNext", mock.Anything).Return(true, nil).Once()
	svc.On("ProcessNext", mock.Anything).Run(func(mock.Arguments) {
		select {
		case polled <- struct{}{}:
		default:
		}
	}).Return(false, nil)
	svc.On("QueueDepth", mock.Anything).Return(0, nil)

	w := NewQueueWorker(svc, 10*time.Millisecond, 10*time.Millisecond)
	w.Start(context.Background())

	for i := 0; i < 2; i++ {
		select {
		case <-polled:
		case <-time.After(time.Second):
			t.Fatal("worker did not poll the queue")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
	checker.Check(0)
}

func TestQueueWorkerShutdownCancelsInFlight(t *testing.T) {
	svc := mocks.NewMockBroadcastService(t)
	started := make(chan struct{})
	svc.On("ProcessNext", mock.Anything).Run(func(args mock.Arguments) {
		close(started)
		<-args.Get(0).(context.Context).Done()
	}).Return(true, context.Canceled).Once()
	svc.On("QueueDepth", mock.Anything).Return(0, nil).Maybe()

	w := NewQueueWorker(svc, time.Hour, time.Hour)
	w.Start(context.Background())
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Shutdown(ctx), context.DeadlineExceeded)
}
