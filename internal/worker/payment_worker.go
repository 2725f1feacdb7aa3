package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/payment"
)

// PaymentScanWorker reads the ProBot channel on a fixed interval
type PaymentScanWorker struct {
	BaseWorker
	svc      payment.Service
	interval time.Duration
}

// NewPaymentScanWorker creates a scanner that runs immediately and then every interval
func NewPaymentScanWorker(svc payment.Service, interval time.Duration) *PaymentScanWorker {
	if interval <= 0 {
		interval = DefaultScanInterval
	}
	return &PaymentScanWorker{
		BaseWorker: newBaseWorker("payment-scan"),
		svc:        svc,
		interval:   interval,
	}
}

// Start begins scanning in the background
func (w *PaymentScanWorker) Start(ctx context.Context) {
	w.run(ctx, func(ctx context.Context) {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.scan(ctx)
		for {
			select {
			case <-ticker.C:
				w.scan(ctx)
			case <-w.stopping():
				return
			case <-ctx.Done():
				return
			}
		}
	})
}

func (w *PaymentScanWorker) scan(ctx context.Context) {
	if _, err := w.svc.ScanChannel(ctx); err != nil && !errors.Is(err, domain.ErrPaymentMonitorNotConfigured) {
		logger.FromContext(ctx).Error(LogMsgPaymentScanFailed, "error", err)
	}
}

// ExpirePaymentsJob marks waiting payment requests past their deadline as expired
func ExpirePaymentsJob(svc payment.Service) Job {
	return JobFunc(func(ctx context.Context) error {
		if _, err := svc.ExpireStale(ctx); err != nil {
			return fmt.Errorf("%s: %w", LogMsgPaymentExpireFailed, err)
		}
		return nil
	})
}
