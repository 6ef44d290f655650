package events

import (
	"context"
	"log/slog"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/usecase"
)

// LogPublisher stands in for Kafka when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

var _ usecase.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, ev recharge.Event) error {
	p.logger.InfoContext(ctx, "Event",
		slog.String("type", string(ev.Type)),
		slog.String("reference", ev.Reference),
		slog.Int64("amount_in_cents", ev.AmountInCents),
	)
	return nil
}
