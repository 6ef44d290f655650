package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"minutes-recharge/internal/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

const DriverName = "pgx"

func Connect(cfg config.DBConfig) (*sql.DB, func(), error) {
	db, err := sql.Open(DriverName, cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(50)
	db.SetConnMaxLifetime(time.Hour)

	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}

	return db, cleanup, nil
}
