package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/usecase"
	"minutes-recharge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const (
	insertAttemptSQL = `INSERT INTO checkout_attempts (id, reference, workspace_id, minutes, amount_in_cents, currency, account_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	cancelAttemptSQL = `UPDATE checkout_attempts SET status = 'canceled', updated_at = NOW()
WHERE reference = $1 AND status = 'issued'`

	confirmAttemptSQL = `UPDATE checkout_attempts SET status = 'confirmed', transaction_id = $2, updated_at = NOW()
WHERE reference = $1 AND status = 'issued'`

	selectAttemptSQL = `SELECT id, reference, workspace_id, minutes, amount_in_cents, currency, account_id, status, created_at
FROM checkout_attempts WHERE reference = $1`
)

type checkoutAttemptRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewCheckoutAttemptRepository(db *sql.DB, logger *slog.Logger) usecase.CheckoutAttemptRepository {
	return &checkoutAttemptRepository{db: db, logger: logger}
}

func (r *checkoutAttemptRepository) Create(ctx context.Context, a *recharge.Attempt) error {
	var accountID uuid.NullUUID
	if a.AccountID() != nil {
		accountID = uuid.NullUUID{UUID: *a.AccountID(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, insertAttemptSQL,
		a.ID(), a.Reference(), a.WorkspaceID(), a.Minutes(), a.AmountInCents(),
		a.Currency().String(), accountID, string(a.Status()), a.CreatedAt())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapErr(r.logger, infra.KindDuplicateKey, "reference already issued", err)
		}
		return infra.WrapErr(r.logger, infra.KindDBFailure, "failed to create checkout attempt", err)
	}
	return nil
}

func (r *checkoutAttemptRepository) MarkCanceled(ctx context.Context, reference string) error {
	return r.transition(ctx, "cancel", cancelAttemptSQL, reference)
}

func (r *checkoutAttemptRepository) MarkConfirmed(ctx context.Context, reference, transactionID string) error {
	return r.transition(ctx, "confirm", confirmAttemptSQL, reference, transactionID)
}

func (r *checkoutAttemptRepository) transition(ctx context.Context, action, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return infra.WrapErr(r.logger, infra.KindDBFailure, "failed to "+action+" checkout attempt", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return infra.WrapErr(r.logger, infra.KindDBFailure, "failed to read affected rows", err)
	}
	if n == 0 {
		return infra.WrapErr(r.logger, infra.KindNotFound, "no issued checkout attempt", nil)
	}
	return nil
}

func (r *checkoutAttemptRepository) FindByReference(ctx context.Context, reference string) (*readmodel.CheckoutAttemptRM, error) {
	var (
		rm        readmodel.CheckoutAttemptRM
		accountID uuid.NullUUID
	)
	err := r.db.QueryRowContext(ctx, selectAttemptSQL, reference).Scan(
		&rm.ID, &rm.Reference, &rm.WorkspaceID, &rm.Minutes, &rm.AmountInCents,
		&rm.Currency, &accountID, &rm.Status, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapErr(r.logger, infra.KindNotFound, "checkout attempt not found", err)
		}
		return nil, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to find checkout attempt", err)
	}
	if accountID.Valid {
		id := accountID.UUID
		rm.AccountID = &id
	}
	return &rm, nil
}
