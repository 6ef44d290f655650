package bootstrap

import (
	"context"
	"log/slog"

	"minutes-recharge/internal/handler/middleware"
	"minutes-recharge/internal/pkg/config"

	"github.com/grafana/loki-client-go/loki"
	slogloki "github.com/samber/slog-loki/v3"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger ships to Loki when LOG_LOKI_URL is set and logs to stdout otherwise.
func NewLogger(lc fx.Lifecycle, cfg config.Config) (*slog.Logger, error) {
	if cfg.Log.LokiURL == "" {
		return middleware.NewLogger(cfg.Log).GetSlogLogger(), nil
	}

	lokiCfg, err := loki.NewDefaultConfig(cfg.Log.LokiURL)
	if err != nil {
		return nil, err
	}
	client, err := loki.New(lokiCfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			client.Stop()
			return nil
		},
	})

	logger := slog.New(slogloki.Option{
		Level:  middleware.ParseLevel(cfg.Log.Level),
		Client: client,
		AttrFromContext: []func(ctx context.Context) []slog.Attr{
			func(ctx context.Context) []slog.Attr {
				if id := middleware.RequestIDFromContext(ctx); id != "" {
					return []slog.Attr{slog.String("request_id", id)}
				}
				return nil
			},
		},
	}.NewLokiHandler()).With("service", cfg.Log.ServiceName)
	slog.SetDefault(logger)

	return logger, nil
}
