package notifications

import (
	"context"
	"log/slog"
	"time"

	"github.com/JadenRazo/showersautodetailing/pkg/logger"

	"github.com/google/uuid"
)

// Notifier is the outbound notification port. Delivery is best effort:
// implementations never surface errors to callers, so a broken broker can
// never fail a booking or a payment.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, payload map[string]interface{})
}

// Dispatcher publishes notifications through a Producer. A nil producer is
// allowed; events are then dropped with a log line, matching how the rest
// of the system boots when Kafka is unavailable.
type Dispatcher struct {
	producer Producer
	logger   *logger.Logger
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(producer Producer, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Dispatcher{
		producer: producer,
		logger:   log,
	}
}

// Notify publishes a notification event. Errors are logged and discarded.
func (d *Dispatcher) Notify(ctx context.Context, kind Kind, payload map[string]interface{}) {
	if !kind.IsValid() {
		d.logger.WarnContext(ctx, "Unknown notification kind dropped",
			slog.String("kind", string(kind)))
		return
	}

	notification := &Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Subject:   kind.Subject(payload),
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	if d.producer == nil {
		d.logger.DebugContext(ctx, "Notification dropped, no producer configured",
			slog.String("kind", string(kind)))
		return
	}

	if err := d.producer.Publish(ctx, notification); err != nil {
		d.logger.ErrorContext(ctx, "Failed to publish notification",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
	}
}
