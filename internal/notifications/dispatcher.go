package notifications

import (
	"context"
	"sync"

	"testplatform/api/internal/metrics"

	"go.uber.org/zap"
)

// Dispatcher sends creator notifications off the request path.
// Nothing is retried or queued; a failed delivery is logged and dropped.
type Dispatcher struct {
	sender Sender
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, logger: logger}
}

// Dispatch returns immediately; delivery runs on its own goroutine.
func (d *Dispatcher) Dispatch(notice CompletionNotice) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				metrics.ObserveNotification(metrics.NotificationFailed)
				d.logger.Error("panic while sending notification", zap.Any("panic", r))
			}
		}()
		d.deliver(context.Background(), notice)
	}()
}

// Wait blocks until in-flight deliveries finish.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, notice CompletionNotice) {
	msg, err := Render(notice)
	if err != nil {
		metrics.ObserveNotification(metrics.NotificationFailed)
		d.logger.Error("failed to render notification", zap.Error(err))
		return
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		metrics.ObserveNotification(metrics.NotificationFailed)
		d.logger.Warn("failed to send notification email",
			zap.String("to", notice.CreatorEmail),
			zap.String("response_id", notice.Response.ID),
			zap.Error(err))
		return
	}

	metrics.ObserveNotification(metrics.NotificationSent)
	d.logger.Info("notification email sent",
		zap.String("to", notice.CreatorEmail),
		zap.String("response_id", notice.Response.ID))
}
