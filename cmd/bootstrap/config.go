package bootstrap

import (
	"log/slog"

	"minutes-recharge/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary never logs secrets, only whether they are present.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("Configuration loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("db_host", cfg.DB.Host),
		slog.Bool("wompi_public_key_set", cfg.Wompi.PublicKey != ""),
		slog.Bool("wompi_integrity_secret_set", cfg.Wompi.IntegritySecret != ""),
		slog.String("wompi_env", cfg.Wompi.Env),
		slog.String("wompi_currency", cfg.Wompi.Currency),
		slog.String("price_per_minute", cfg.Wompi.PricePerMinute.String()),
		slog.Bool("redis_sessions", cfg.Session.RedisAddr != ""),
		slog.Int("kafka_brokers", len(cfg.Kafka.Brokers)),
		slog.Bool("tracing", cfg.Tracing.Endpoint != ""),
		slog.String("usage_timezone", cfg.Usage.TimeZone),
	)
}
