package bootstrap

import (
	"context"
	"log/slog"

	"minutes-recharge/internal/infra/events"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn("KAFKA_BROKERS not set, events are only logged")
		return events.NewLogPublisher(logger)
	}

	publisher := events.NewKafkaPublisher(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
