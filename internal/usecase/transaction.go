package usecase

import (
	"context"
	"log/slog"
	"strings"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/domain/transaction"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	EnvTest       = "test"
	EnvProduction = "production"
)

// ProviderEnv normalizes a lookup env: anything but "test" is production.
func ProviderEnv(env string) string {
	if strings.TrimSpace(env) == EnvTest {
		return EnvTest
	}
	return EnvProduction
}

var (
	ErrTransactionNotFound = errs.New("transaction not found")
	ErrProviderUnavailable = errs.New("payment provider unavailable")
)

type TransactionUseCase interface {
	// GetSummary returns (nil, nil) for an empty transaction id.
	GetSummary(ctx context.Context, transactionID, env string) (*transaction.Summary, error)
}

type transactionUseCaseImpl struct {
	provider     TransactionProvider
	rates        ExchangeRateProvider
	fallbackRate decimal.Decimal
	settleEnv    string
	attempts     CheckoutAttemptRepository
	publisher    EventPublisher
	metrics      CheckoutMetrics
	clock        clock.Clock
	logger       *slog.Logger
}

func NewTransactionUseCase(
	provider TransactionProvider,
	rates ExchangeRateProvider,
	fallbackRate decimal.Decimal,
	settleEnv string,
	attempts CheckoutAttemptRepository,
	publisher EventPublisher,
	metrics CheckoutMetrics,
	clk clock.Clock,
	logger *slog.Logger,
) TransactionUseCase {
	return &transactionUseCaseImpl{
		provider:     provider,
		rates:        rates,
		fallbackRate: fallbackRate,
		settleEnv:    ProviderEnv(settleEnv),
		attempts:     attempts,
		publisher:    publisher,
		metrics:      metrics,
		clock:        clk,
		logger:       logger,
	}
}

func (uc *transactionUseCaseImpl) GetSummary(ctx context.Context, transactionID, env string) (*transaction.Summary, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, nil
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "TransactionUseCase.GetSummary")
	defer span.End()
	span.SetAttributes(
		attribute.String("transaction.id", transactionID),
		attribute.String("transaction.env", env),
	)

	tx, err := uc.provider.GetTransaction(ctx, env, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider lookup failed")
		return nil, errs.Mark(err, ErrProviderUnavailable)
	}

	summary := transaction.NewSummary(*tx, uc.rateFor(ctx, tx.Currency))

	if tx.Status == transaction.StatusApproved {
		uc.confirm(ctx, env, tx)
	}
	return summary, nil
}

// rateFor only queries the live rate for COP charges. Any failure falls back
// to the configured rate.
func (uc *transactionUseCaseImpl) rateFor(ctx context.Context, currency string) decimal.Decimal {
	if currency != recharge.CurrencyCOP.String() {
		return uc.fallbackRate
	}
	rate, err := uc.rates.COPPerUSD(ctx)
	if err != nil || !rate.IsPositive() {
		uc.metrics.ExchangeFallback()
		args := []any{slog.String("fallback_rate", uc.fallbackRate.String())}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
		}
		uc.logger.WarnContext(ctx, "Using fallback exchange rate", args...)
		return uc.fallbackRate
	}
	return rate
}

// confirm moves the attempt to confirmed once; the event is only published
// on that transition. Approvals from the other provider env, or whose charge
// differs from the issued attempt, never confirm.
func (uc *transactionUseCaseImpl) confirm(ctx context.Context, env string, tx *transaction.ProviderTransaction) {
	logArgs := []any{
		slog.String("reference", tx.Reference),
		slog.String("transaction_id", tx.ID),
	}
	if ProviderEnv(env) != uc.settleEnv {
		uc.logger.WarnContext(ctx, "Ignoring approval from another provider env",
			append(logArgs, slog.String("env", ProviderEnv(env)), slog.String("settle_env", uc.settleEnv))...)
		return
	}

	attempt, err := uc.attempts.FindByReference(ctx, tx.Reference)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			uc.logger.ErrorContext(ctx, "Failed to load attempt", append(logArgs, slog.String("error", err.Error()))...)
		}
		return
	}
	if attempt.AmountInCents != tx.AmountInCents || attempt.Currency != strings.ToUpper(strings.TrimSpace(tx.Currency)) {
		uc.logger.WarnContext(ctx, "Approved charge does not match attempt",
			append(logArgs,
				slog.Int64("attempt_amount_in_cents", attempt.AmountInCents),
				slog.String("attempt_currency", attempt.Currency),
				slog.Int64("amount_in_cents", tx.AmountInCents),
				slog.String("currency", tx.Currency),
			)...)
		return
	}

	if err := uc.attempts.MarkConfirmed(ctx, tx.Reference, tx.ID); err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			uc.logger.ErrorContext(ctx, "Failed to confirm attempt", append(logArgs, slog.String("error", err.Error()))...)
		}
		return
	}

	ev := recharge.Confirmed(recharge.ConfirmedPayment{
		TransactionID: tx.ID,
		Reference:     tx.Reference,
		WorkspaceID:   attempt.WorkspaceID,
		Minutes:       attempt.Minutes,
		AmountInCents: attempt.AmountInCents,
		Currency:      attempt.Currency,
	}, uc.clock.Now())
	publishEvent(ctx, uc.publisher, uc.metrics, uc.logger, ev)
}
