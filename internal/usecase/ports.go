package usecase

import (
	"context"
	"time"

	"minutes-recharge/internal/domain/account"
	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/domain/transaction"
	"minutes-recharge/internal/domain/usage"
	"minutes-recharge/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	FindByEmail(ctx context.Context, email account.Email) (*readmodel.AuthorizedAccountRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedAccountRM, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Create(ctx context.Context, a *account.Account) error
}

type CheckoutAttemptRepository interface {
	Create(ctx context.Context, a *recharge.Attempt) error
	// MarkCanceled and MarkConfirmed only move attempts that are still issued
	// and return a NOT_FOUND infra error otherwise.
	MarkCanceled(ctx context.Context, reference string) error
	MarkConfirmed(ctx context.Context, reference, transactionID string) error
	FindByReference(ctx context.Context, reference string) (*readmodel.CheckoutAttemptRM, error)
}

type CallRecordRepository interface {
	DailyUsage(ctx context.Context, workspaceID string, r usage.DateRange) ([]usage.DailyUsage, error)
	List(ctx context.Context, workspaceID string, page usage.Page) ([]usage.CallRecord, int64, error)
}

// SessionStore holds the reference of the checkout a session is currently in.
// Writes are last-write-wins: overlapping checkouts for one session leave the
// slot with whichever finished last.
type SessionStore interface {
	SetCurrentReference(ctx context.Context, sessionID, reference string) error
	CurrentReference(ctx context.Context, sessionID string) (string, bool, error)
	ClearCurrentReference(ctx context.Context, sessionID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, ev recharge.Event) error
}

type TransactionProvider interface {
	GetTransaction(ctx context.Context, env, transactionID string) (*transaction.ProviderTransaction, error)
}

type ExchangeRateProvider interface {
	COPPerUSD(ctx context.Context) (decimal.Decimal, error)
}

// CheckoutMetrics is satisfied by infra/metrics. Outcome is a short label
// such as "issued" or "invalid_argument".
type CheckoutMetrics interface {
	EnvelopeOutcome(outcome string)
	PublishFailed(eventType string)
	ExchangeFallback()
}
