package bootstrap

import (
	"context"
	"log/slog"

	"minutes-recharge/internal/infra/metrics"
	"minutes-recharge/internal/infra/tracing"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) usecase.CheckoutMetrics { return m },
	),
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := tracing.Setup(context.Background(), cfg.Tracing, cfg.Log.ServiceName, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
