package components

import (
	"log/slog"

	"minutes-recharge/internal/infra/client"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		func(cfg config.Config, logger *slog.Logger) usecase.TransactionProvider {
			return client.NewWompiClient(cfg.Wompi, logger)
		},
		func(cfg config.Config, logger *slog.Logger) usecase.ExchangeRateProvider {
			return client.NewExchangeClient(cfg.Exchange, logger)
		},
	),
)
