package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"

	"minutes-recharge/internal/infra/db"
	"minutes-recharge/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*sql.DB, error) {
	conn, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.MigrateOnBoot {
		if err := db.RunMigrations(conn); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("Migrations applied")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return conn, nil
}
