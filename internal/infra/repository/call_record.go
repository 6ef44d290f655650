package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"minutes-recharge/internal/domain/usage"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/usecase"
)

const (
	// $4 is the IANA zone used to bucket calls into local days.
	dailyUsageSQL = `SELECT to_char(started_at AT TIME ZONE $4, 'YYYY-MM-DD') AS day, COALESCE(SUM(duration_seconds), 0)
FROM call_records
WHERE workspace_id = $1 AND started_at >= $2 AND started_at < $3
GROUP BY day
ORDER BY day`

	countCallsSQL = `SELECT COUNT(*) FROM call_records WHERE workspace_id = $1`

	listCallsSQL = `SELECT id, workspace_id, contact_name, contact_email, phone_number, duration_seconds, started_at
FROM call_records
WHERE workspace_id = $1
ORDER BY started_at DESC, id
LIMIT $2 OFFSET $3`
)

type callRecordRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewCallRecordRepository(db *sql.DB, logger *slog.Logger) usecase.CallRecordRepository {
	return &callRecordRepository{db: db, logger: logger}
}

func (r *callRecordRepository) DailyUsage(ctx context.Context, workspaceID string, dr usage.DateRange) ([]usage.DailyUsage, error) {
	loc := dr.Start().Location()
	rows, err := r.db.QueryContext(ctx, dailyUsageSQL, workspaceID, dr.Start(), dr.EndExclusive(), loc.String())
	if err != nil {
		return nil, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to aggregate call usage", err)
	}
	defer rows.Close()

	var out []usage.DailyUsage
	for rows.Next() {
		var (
			day     string
			seconds int64
		)
		if err := rows.Scan(&day, &seconds); err != nil {
			return nil, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to scan call usage", err)
		}
		date, err := time.ParseInLocation(usage.DateLayout, day, loc)
		if err != nil {
			return nil, infra.WrapErr(r.logger, infra.KindDBFailure, "unexpected usage day", err)
		}
		out = append(out, usage.DailyUsage{Date: date, Seconds: seconds})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to iterate call usage", err)
	}
	return out, nil
}

func (r *callRecordRepository) List(ctx context.Context, workspaceID string, page usage.Page) ([]usage.CallRecord, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countCallsSQL, workspaceID).Scan(&total); err != nil {
		return nil, 0, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to count calls", err)
	}
	if total == 0 {
		return []usage.CallRecord{}, 0, nil
	}

	rows, err := r.db.QueryContext(ctx, listCallsSQL, workspaceID, page.Size(), page.Offset())
	if err != nil {
		return nil, 0, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to list calls", err)
	}
	defer rows.Close()

	items := make([]usage.CallRecord, 0, page.Size())
	for rows.Next() {
		var c usage.CallRecord
		if err := rows.Scan(&c.ID, &c.WorkspaceID, &c.ContactName, &c.ContactEmail, &c.PhoneNumber, &c.DurationSeconds, &c.StartedAt); err != nil {
			return nil, 0, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to scan call", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to iterate calls", err)
	}
	return items, total, nil
}
