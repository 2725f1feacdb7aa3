package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/payment"
	"github.com/osse101/BroadcasterPro_Go/mocks"
)

func TestPaymentScanWorkerScansOnStart(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	scanned := make(chan struct{}, 1)
	svc.On("ScanChannel", mock.Anything).Run(func(mock.Arguments) {
		select {
		case scanned <- struct{}{}:
		default:
		}
	}).Return(&payment.ScanResult{}, nil)

	w := NewPaymentScanWorker(svc, time.Hour)
	w.Start(context.Background())

	select {
	case <-scanned:
	case <-time.After(time.Second):
		t.Fatal("worker did not scan on start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
}

func TestPaymentScanWorkerToleratesMissingConfig(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	svc.On("ScanChannel", mock.Anything).Return(nil, domain.ErrPaymentMonitorNotConfigured).Once()

	w := NewPaymentScanWorker(svc, time.Hour)
	assert.NotPanics(t, func() { w.scan(context.Background()) })
}

func TestExpirePaymentsJob(t *testing.T) {
	ctx := context.Background()

	svc := mocks.NewMockPaymentService(t)
	svc.On("ExpireStale", ctx).Return(int64(2), nil).Once()
	assert.NoError(t, ExpirePaymentsJob(svc).Process(ctx))

	failing := mocks.NewMockPaymentService(t)
	failing.On("ExpireStale", ctx).Return(int64(0), errors.New("db down")).Once()
	err := ExpirePaymentsJob(failing).Process(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
