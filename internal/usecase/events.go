package usecase

import (
	"context"
	"log/slog"

	"minutes-recharge/internal/domain/recharge"
)

// publishEvent never fails the caller; a lost event is logged and counted.
func publishEvent(ctx context.Context, publisher EventPublisher, metrics CheckoutMetrics, logger *slog.Logger, ev recharge.Event) {
	if err := publisher.Publish(ctx, ev); err != nil {
		metrics.PublishFailed(string(ev.Type))
		logger.WarnContext(ctx, "Failed to publish event",
			slog.String("type", string(ev.Type)),
			slog.String("reference", ev.Reference),
			slog.String("error", err.Error()),
		)
	}
}
