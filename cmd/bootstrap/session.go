package bootstrap

import (
	"context"
	"log/slog"

	"minutes-recharge/internal/infra/session"
	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
	),
)

// NewSessionStore falls back to an in-process store when REDIS_ADDR is empty.
// That store is lost on restart and not shared between replicas.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) usecase.SessionStore {
	if cfg.Session.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, using in-memory session store")
		return session.NewMemoryStore(cfg.Session.TTL, clk)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return session.NewRedisStore(client, cfg.Session.TTL, logger)
}
