//go:build unit

package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/infra/repository"
	"minutes-recharge/tests/common/builder"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttempt(t *testing.T, accountID *uuid.UUID) *recharge.Attempt {
	t.Helper()
	env, err := builder.NewEnvelopeBuilder().BuildDomain()
	require.NoError(t, err)
	return recharge.NewAttempt(env, accountID, builder.FixedNow)
}

func TestCheckoutAttemptRepository_Create(t *testing.T) {
	ctx := context.Background()
	insert := regexp.QuoteMeta(`INSERT INTO checkout_attempts`)
	accountID := uuid.New()

	testCases := []struct {
		name       string
		accountID  *uuid.UUID
		execErr    error
		expectKind infra.ErrorKind
	}{
		{name: "success: with account", accountID: &accountID},
		{name: "success: anonymous"},
		{name: "error: duplicate reference", execErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database failure", execErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := repository.NewCheckoutAttemptRepository(db, quietLogger())
			attempt := newAttempt(t, tc.accountID)

			var expectedAccount any
			if tc.accountID != nil {
				expectedAccount = tc.accountID.String()
			}
			exp := mock.ExpectExec(insert).WithArgs(
				attempt.ID(), attempt.Reference(), "66666", int64(30), int64(3000000),
				"COP", expectedAccount, "issued", builder.FixedNow)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.Create(ctx, attempt)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCheckoutAttemptRepository_Transitions(t *testing.T) {
	ctx := context.Background()
	ref := "workspace_id=66666-minutes=30-timestamp=1741964966535-type=RECARGA_MINUTOS"

	t.Run("cancel issued attempt", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCheckoutAttemptRepository(db, quietLogger())
		mock.ExpectExec(regexp.QuoteMeta(`SET status = 'canceled'`)).WithArgs(ref).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkCanceled(ctx, ref))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("confirm when nothing is issued", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCheckoutAttemptRepository(db, quietLogger())
		mock.ExpectExec(regexp.QuoteMeta(`SET status = 'confirmed'`)).WithArgs(ref, "tx-1").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkConfirmed(ctx, ref, "tx-1")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCheckoutAttemptRepository(db, quietLogger())
		mock.ExpectExec(regexp.QuoteMeta(`SET status = 'canceled'`)).WithArgs(ref).WillReturnError(errors.New("timeout"))

		err := repo.MarkCanceled(ctx, ref)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCheckoutAttemptRepository_FindByReference(t *testing.T) {
	ctx := context.Background()
	ref := "workspace_id=66666-minutes=30-timestamp=1741964966535-type=RECARGA_MINUTOS"
	columns := []string{"id", "reference", "workspace_id", "minutes", "amount_in_cents", "currency", "account_id", "status", "created_at"}

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCheckoutAttemptRepository(db, quietLogger())
		id, accountID := uuid.New(), uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM checkout_attempts WHERE reference = $1`)).WithArgs(ref).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(id.String(), ref, "66666", int64(30), int64(3000000), "COP", accountID.String(), "issued", builder.FixedNow))

		rm, err := repo.FindByReference(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, id, rm.ID)
		assert.Equal(t, &accountID, rm.AccountID)
		assert.Equal(t, "issued", rm.Status)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCheckoutAttemptRepository(db, quietLogger())
		mock.ExpectQuery(regexp.QuoteMeta(`FROM checkout_attempts WHERE reference = $1`)).WithArgs(ref).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByReference(ctx, ref)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
