//go:build unit || e2e

package dbtest

import (
	"context"
	"database/sql"
)

// the minimal interface required for test DB operations.
// Satisfied by both *sql.DB and *sql.Tx.
type DBLike interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
