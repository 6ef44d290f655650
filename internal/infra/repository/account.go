package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"minutes-recharge/internal/domain/account"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/usecase"
	"minutes-recharge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const (
	selectAccountColumns = `SELECT id, email, password_hash, workspace_id, is_active, last_login_at FROM accounts`

	insertAccountSQL = `INSERT INTO accounts (id, email, password_hash, workspace_id, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	updateLastLoginSQL = `UPDATE accounts SET last_login_at = $2 WHERE id = $1`
)

type accountRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewAccountRepository(db *sql.DB, logger *slog.Logger) usecase.AccountRepository {
	return &accountRepository{db: db, logger: logger}
}

func (r *accountRepository) FindByEmail(ctx context.Context, email account.Email) (*readmodel.AuthorizedAccountRM, string, error) {
	row := r.db.QueryRowContext(ctx, selectAccountColumns+` WHERE email = $1`, email.Value())
	rm, hash, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", infra.WrapErr(r.logger, infra.KindNotFound, "account not found", err)
		}
		return nil, "", infra.WrapErr(r.logger, infra.KindDBFailure, "failed to find account by email", err)
	}
	return rm, hash, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedAccountRM, error) {
	row := r.db.QueryRowContext(ctx, selectAccountColumns+` WHERE id = $1`, id)
	rm, _, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapErr(r.logger, infra.KindNotFound, "account not found", err)
		}
		return nil, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to find account by ID", err)
	}
	return rm, nil
}

func (r *accountRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx, updateLastLoginSQL, id, at)
	if err != nil {
		return infra.WrapErr(r.logger, infra.KindDBFailure, "failed to update last login", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return infra.WrapErr(r.logger, infra.KindNotFound, "account not found", nil)
	}
	return nil
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	_, err := r.db.ExecContext(ctx, insertAccountSQL,
		a.ID(), a.Email().Value(), a.PasswordHash(), a.WorkspaceID(), a.IsActive(), a.CreatedAt())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapErr(r.logger, infra.KindDuplicateKey, "account email already registered", err)
		}
		return infra.WrapErr(r.logger, infra.KindDBFailure, "failed to create account", err)
	}
	return nil
}

func scanAccount(row *sql.Row) (*readmodel.AuthorizedAccountRM, string, error) {
	var (
		rm        readmodel.AuthorizedAccountRM
		hash      string
		lastLogin sql.NullTime
	)
	if err := row.Scan(&rm.ID, &rm.Email, &hash, &rm.WorkspaceID, &rm.IsActive, &lastLogin); err != nil {
		return nil, "", err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		rm.LastLoginAt = &t
	}
	return &rm, hash, nil
}
