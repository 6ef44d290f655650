package usecase

import (
	"context"
	"errors"
	"log/slog"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "minutes-recharge/usecase"

// Session identifies whose checkout slot is being used.
type Session struct {
	AccountID   uuid.UUID
	WorkspaceID string
}

func (s Session) ID() string {
	return s.AccountID.String()
}

type CreateEnvelopeParams struct {
	Minutes     int64
	AmountCOP   *decimal.Decimal // nil prices the minutes at the configured rate
	Description string
}

type ProviderStatus struct {
	Configured bool
	PublicKey  string
	Currency   string
}

type CheckoutUseCase interface {
	CreateEnvelope(ctx context.Context, session Session, params CreateEnvelopeParams) (*recharge.Envelope, error)
	CurrentReference(ctx context.Context, session Session) (string, bool, error)
	Cleanup(ctx context.Context, session Session) error
	ProviderStatus() ProviderStatus
}

type checkoutUseCaseImpl struct {
	factory        *recharge.EnvelopeFactory
	pricePerMinute decimal.Decimal
	attempts       CheckoutAttemptRepository
	sessions       SessionStore
	publisher      EventPublisher
	metrics        CheckoutMetrics
	clock          clock.Clock
	logger         *slog.Logger
}

func NewCheckoutUseCase(
	factory *recharge.EnvelopeFactory,
	pricePerMinute decimal.Decimal,
	attempts CheckoutAttemptRepository,
	sessions SessionStore,
	publisher EventPublisher,
	metrics CheckoutMetrics,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		factory:        factory,
		pricePerMinute: pricePerMinute,
		attempts:       attempts,
		sessions:       sessions,
		publisher:      publisher,
		metrics:        metrics,
		clock:          clk,
		logger:         logger,
	}
}

func (uc *checkoutUseCaseImpl) CreateEnvelope(ctx context.Context, session Session, params CreateEnvelopeParams) (*recharge.Envelope, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "CheckoutUseCase.CreateEnvelope")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", session.ID()),
		attribute.Int64("recharge.minutes", params.Minutes),
	)

	amount := recharge.PriceFor(params.Minutes, uc.pricePerMinute)
	if params.AmountCOP != nil {
		amount = *params.AmountCOP
	}
	if session.WorkspaceID != "" {
		ctx = recharge.WithWorkspaceID(ctx, session.WorkspaceID)
	}

	env, err := uc.factory.Assemble(ctx, amount, params.Minutes, params.Description)
	if err != nil {
		uc.metrics.EnvelopeOutcome(outcomeOf(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "envelope assembly failed")
		return nil, err
	}
	reference := env.Reference().String()
	span.SetAttributes(attribute.String("recharge.reference", reference))

	var accountID *uuid.UUID
	if session.AccountID != uuid.Nil {
		id := session.AccountID
		accountID = &id
	}
	now := uc.clock.Now()
	if err := uc.attempts.Create(ctx, recharge.NewAttempt(env, accountID, now)); err != nil {
		uc.metrics.EnvelopeOutcome("store_failed")
		span.SetStatus(codes.Error, "failed to record attempt")
		return nil, errs.Wrap(err, "failed to record checkout attempt")
	}

	if err := uc.sessions.SetCurrentReference(ctx, session.ID(), reference); err != nil {
		uc.metrics.EnvelopeOutcome("store_failed")
		span.SetStatus(codes.Error, "failed to store current reference")
		// no slot points at the attempt; Cleanup can never reach it
		if cerr := uc.attempts.MarkCanceled(ctx, reference); cerr != nil {
			uc.logger.ErrorContext(ctx, "Failed to cancel orphaned attempt",
				slog.String("reference", reference),
				slog.String("error", cerr.Error()),
			)
		}
		return nil, errs.Wrap(err, "failed to store current reference")
	}

	publishEvent(ctx, uc.publisher, uc.metrics, uc.logger, recharge.EnvelopeIssued(env, now))
	uc.metrics.EnvelopeOutcome("issued")

	uc.logger.InfoContext(ctx, "Envelope issued",
		slog.String("reference", reference),
		slog.String("workspace_id", env.WorkspaceID()),
		slog.Int64("amount_in_cents", env.AmountInCents()),
	)
	return env, nil
}

func (uc *checkoutUseCaseImpl) CurrentReference(ctx context.Context, session Session) (string, bool, error) {
	return uc.sessions.CurrentReference(ctx, session.ID())
}

// Cleanup releases the session slot. The attempt it pointed to is canceled
// unless it was already confirmed.
func (uc *checkoutUseCaseImpl) Cleanup(ctx context.Context, session Session) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "CheckoutUseCase.Cleanup")
	defer span.End()

	reference, ok, err := uc.sessions.CurrentReference(ctx, session.ID())
	if err != nil {
		return err
	}
	if err := uc.sessions.ClearCurrentReference(ctx, session.ID()); err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := uc.attempts.MarkCanceled(ctx, reference); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		span.SetStatus(codes.Error, "failed to cancel attempt")
		return err
	}
	return nil
}

func (uc *checkoutUseCaseImpl) ProviderStatus() ProviderStatus {
	provider := uc.factory.Provider
	currency, err := recharge.NewCurrency(provider.Currency)
	if err != nil {
		currency = recharge.DefaultCurrency
	}
	status := ProviderStatus{
		Configured: provider.IsConfigured(),
		Currency:   currency.String(),
	}
	if status.Configured {
		status.PublicKey = provider.PublicKey
	}
	return status
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, recharge.ErrMisconfiguredProvider):
		return "misconfigured"
	case errors.Is(err, recharge.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, recharge.ErrInvalidCurrency):
		return "invalid_currency"
	case errors.Is(err, recharge.ErrSignatureUnavailable):
		return "signature_unavailable"
	default:
		return "error"
	}
}
