//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/usecase"
	"minutes-recharge/tests/common/builder"
	usecasemock "minutes-recharge/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	attempts  *usecasemock.MockCheckoutAttemptRepository
	sessions  *usecasemock.MockSessionStore
	publisher *usecasemock.MockEventPublisher
	metrics   *usecasemock.MockCheckoutMetrics
}

func newCheckoutUseCase(t *testing.T, b *builder.EnvelopeBuilder) (usecase.CheckoutUseCase, checkoutMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		attempts:  usecasemock.NewMockCheckoutAttemptRepository(ctrl),
		sessions:  usecasemock.NewMockSessionStore(ctrl),
		publisher: usecasemock.NewMockEventPublisher(ctrl),
		metrics:   usecasemock.NewMockCheckoutMetrics(ctrl),
	}
	uc := usecase.NewCheckoutUseCase(
		b.BuildFactory(),
		decimal.NewFromInt(1000),
		m.attempts,
		m.sessions,
		m.publisher,
		m.metrics,
		clock.NewMockClock(builder.FixedNow),
		slog.New(slog.DiscardHandler),
	)
	return uc, m
}

func TestCheckoutUseCase_CreateEnvelope(t *testing.T) {
	ctx := context.Background()
	session := usecase.Session{AccountID: uuid.New(), WorkspaceID: "192535"}
	expectedRef := "workspace_id=192535-minutes=30-timestamp=1741964966535-type=RECARGA_MINUTOS"

	testCases := []struct {
		name       string
		params     usecase.CreateEnvelopeParams
		setupMock  func(m checkoutMocks)
		expectErr  error
		expectKind infra.ErrorKind
		expectCOP  string
		expectCent int64
	}{
		{
			name:   "success: amount priced from minutes",
			params: usecase.CreateEnvelopeParams{Minutes: 30},
			setupMock: func(m checkoutMocks) {
				m.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *recharge.Attempt) error {
						assert.Equal(t, expectedRef, a.Reference())
						assert.Equal(t, session.AccountID, *a.AccountID())
						return nil
					})
				m.sessions.EXPECT().SetCurrentReference(gomock.Any(), session.ID(), expectedRef).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ev recharge.Event) error {
						assert.Equal(t, recharge.EventEnvelopeIssued, ev.Type)
						assert.Equal(t, "192535", ev.WorkspaceID)
						return nil
					})
				m.metrics.EXPECT().EnvelopeOutcome("issued")
			},
			expectCOP:  "30000",
			expectCent: 3000000,
		},
		{
			name: "success: explicit amount wins",
			params: usecase.CreateEnvelopeParams{
				Minutes:   30,
				AmountCOP: func() *decimal.Decimal { d := decimal.RequireFromString("25000.50"); return &d }(),
			},
			setupMock: func(m checkoutMocks) {
				m.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.sessions.EXPECT().SetCurrentReference(gomock.Any(), session.ID(), expectedRef).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
				m.metrics.EXPECT().EnvelopeOutcome("issued")
			},
			expectCOP:  "25000.5",
			expectCent: 2500050,
		},
		{
			name:   "success: publish failure does not fail the request",
			params: usecase.CreateEnvelopeParams{Minutes: 30},
			setupMock: func(m checkoutMocks) {
				m.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.sessions.EXPECT().SetCurrentReference(gomock.Any(), session.ID(), expectedRef).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
				m.metrics.EXPECT().PublishFailed(string(recharge.EventEnvelopeIssued))
				m.metrics.EXPECT().EnvelopeOutcome("issued")
			},
			expectCOP:  "30000",
			expectCent: 3000000,
		},
		{
			name:   "error: invalid minutes never touches storage",
			params: usecase.CreateEnvelopeParams{Minutes: 0},
			setupMock: func(m checkoutMocks) {
				m.metrics.EXPECT().EnvelopeOutcome("invalid_argument")
			},
			expectErr: recharge.ErrInvalidArgument,
		},
		{
			name:   "error: attempt store failure",
			params: usecase.CreateEnvelopeParams{Minutes: 30},
			setupMock: func(m checkoutMocks) {
				m.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(infra.WrapErr(nil, infra.KindDBFailure, "insert failed", errors.New("conn reset")))
				m.metrics.EXPECT().EnvelopeOutcome("store_failed")
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name:   "error: session store failure cancels the attempt",
			params: usecase.CreateEnvelopeParams{Minutes: 30},
			setupMock: func(m checkoutMocks) {
				m.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.sessions.EXPECT().SetCurrentReference(gomock.Any(), session.ID(), expectedRef).
					Return(infra.WrapErr(nil, infra.KindCacheFailure, "redis down", errors.New("i/o timeout")))
				m.attempts.EXPECT().MarkCanceled(gomock.Any(), expectedRef).Return(nil)
				m.metrics.EXPECT().EnvelopeOutcome("store_failed")
			},
			expectKind: infra.KindCacheFailure,
		},
		{
			name:   "error: failed cancel still reports the session error",
			params: usecase.CreateEnvelopeParams{Minutes: 30},
			setupMock: func(m checkoutMocks) {
				m.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.sessions.EXPECT().SetCurrentReference(gomock.Any(), session.ID(), expectedRef).
					Return(infra.WrapErr(nil, infra.KindCacheFailure, "redis down", nil))
				m.attempts.EXPECT().MarkCanceled(gomock.Any(), expectedRef).
					Return(infra.WrapErr(nil, infra.KindDBFailure, "update failed", nil))
				m.metrics.EXPECT().EnvelopeOutcome("store_failed")
			},
			expectKind: infra.KindCacheFailure,
		},
		{
			name:   "error: amount beyond int64 cents never touches storage",
			params: usecase.CreateEnvelopeParams{
				Minutes:   30,
				AmountCOP: func() *decimal.Decimal { d := decimal.RequireFromString("1e20"); return &d }(),
			},
			setupMock: func(m checkoutMocks) {
				m.metrics.EXPECT().EnvelopeOutcome("invalid_argument")
			},
			expectErr: recharge.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newCheckoutUseCase(t, builder.NewEnvelopeBuilder())
			tc.setupMock(m)

			env, err := uc.CreateEnvelope(ctx, session, tc.params)

			if tc.expectErr != nil || tc.expectKind != "" {
				require.Error(t, err)
				assert.Nil(t, env)
				if tc.expectErr != nil {
					assert.ErrorIs(t, err, tc.expectErr)
				}
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expectedRef, env.Reference().String())
			assert.Equal(t, tc.expectCOP, env.AmountCOP().String())
			assert.Equal(t, tc.expectCent, env.AmountInCents())
			assert.Len(t, env.Signature(), 64)
		})
	}

	t.Run("error: misconfigured provider", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, builder.NewEnvelopeBuilder().WithoutSecret())
		m.metrics.EXPECT().EnvelopeOutcome("misconfigured")

		_, err := uc.CreateEnvelope(ctx, session, usecase.CreateEnvelopeParams{Minutes: 30})
		assert.ErrorIs(t, err, recharge.ErrMisconfiguredProvider)
	})
}

func TestCheckoutUseCase_Cleanup(t *testing.T) {
	ctx := context.Background()
	session := usecase.Session{AccountID: uuid.New()}
	ref := "workspace_id=66666-minutes=30-timestamp=1741964966535-type=RECARGA_MINUTOS"

	testCases := []struct {
		name      string
		setupMock func(m checkoutMocks)
		expectErr bool
	}{
		{
			name: "success: clears slot and cancels attempt",
			setupMock: func(m checkoutMocks) {
				m.sessions.EXPECT().CurrentReference(gomock.Any(), session.ID()).Return(ref, true, nil)
				m.sessions.EXPECT().ClearCurrentReference(gomock.Any(), session.ID()).Return(nil)
				m.attempts.EXPECT().MarkCanceled(gomock.Any(), ref).Return(nil)
			},
		},
		{
			name: "success: empty slot",
			setupMock: func(m checkoutMocks) {
				m.sessions.EXPECT().CurrentReference(gomock.Any(), session.ID()).Return("", false, nil)
				m.sessions.EXPECT().ClearCurrentReference(gomock.Any(), session.ID()).Return(nil)
			},
		},
		{
			name: "success: attempt already confirmed",
			setupMock: func(m checkoutMocks) {
				m.sessions.EXPECT().CurrentReference(gomock.Any(), session.ID()).Return(ref, true, nil)
				m.sessions.EXPECT().ClearCurrentReference(gomock.Any(), session.ID()).Return(nil)
				m.attempts.EXPECT().MarkCanceled(gomock.Any(), ref).
					Return(infra.WrapErr(nil, infra.KindNotFound, "no issued attempt", nil))
			},
		},
		{
			name: "error: session store failure",
			setupMock: func(m checkoutMocks) {
				m.sessions.EXPECT().CurrentReference(gomock.Any(), session.ID()).
					Return("", false, infra.WrapErr(nil, infra.KindCacheFailure, "get failed", errors.New("timeout")))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newCheckoutUseCase(t, builder.NewEnvelopeBuilder())
			tc.setupMock(m)

			err := uc.Cleanup(ctx, session)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckoutUseCase_ProviderStatus(t *testing.T) {
	uc, _ := newCheckoutUseCase(t, builder.NewEnvelopeBuilder())
	status := uc.ProviderStatus()
	assert.True(t, status.Configured)
	assert.Equal(t, "pub_test_abc123", status.PublicKey)
	assert.Equal(t, "COP", status.Currency)

	uc, _ = newCheckoutUseCase(t, builder.NewEnvelopeBuilder().WithoutPublicKey())
	status = uc.ProviderStatus()
	assert.False(t, status.Configured)
	assert.Empty(t, status.PublicKey)
}
