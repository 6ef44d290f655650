//go:build unit || e2e

package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const DefaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultPassword = "password123"

func CreateTestAccount(t *testing.T, db DBLike, email, workspaceID string) uuid.UUID {
	t.Helper()

	accountID := uuid.New()
	ctx := context.Background()

	res, err := db.ExecContext(ctx,
		"INSERT INTO accounts (id, email, password_hash, workspace_id, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		accountID, email, DefaultPasswordHash, workspaceID)
	require.NoError(t, err)

	if n, _ := res.RowsAffected(); n == 0 {
		_ = db.QueryRowContext(ctx, "SELECT id FROM accounts WHERE email = $1", email).Scan(&accountID)
	}

	return accountID
}

func DeactivateAccount(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), "UPDATE accounts SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func CreateCallRecord(t *testing.T, db DBLike, workspaceID, contact string, duration time.Duration, startedAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO call_records (id, workspace_id, contact_name, contact_email, phone_number, duration_seconds, started_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		id, workspaceID, contact, strings.ToLower(contact)+"@example.com", "+573001234567", int64(duration.Seconds()), startedAt)
	require.NoError(t, err)
	return id
}

// AttemptStatus reads the lifecycle status of a checkout attempt by reference.
func AttemptStatus(t *testing.T, db DBLike, reference string) string {
	t.Helper()

	var status string
	err := db.QueryRowContext(context.Background(), "SELECT status FROM checkout_attempts WHERE reference = $1", reference).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the goose bookkeeping table
func ResetDB(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := db.QueryContext(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := db.ExecContext(ctx, sqlAny.(string))
	return err
}
