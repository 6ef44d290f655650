package components

import (
	"log/slog"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCheckoutModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	NewEnvelopeFactory,
)

var usecaseCheckoutModule = fx.Module("usecase/checkout",
	fx.Provide(
		NewCheckoutUseCase,
		NewTransactionUseCase,
		NewUsageUseCase,
		usecase.NewAuthUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewEnvelopeFactory resolves the workspace from the caller's session and
// falls back to WOMPI_WORKSPACE_ID.
func NewEnvelopeFactory(cfg config.Config, clk clock.Clock, logger *slog.Logger) *recharge.EnvelopeFactory {
	provider := recharge.ProviderConfig{
		PublicKey:       cfg.Wompi.PublicKey,
		IntegritySecret: cfg.Wompi.IntegritySecret,
		Currency:        cfg.Wompi.Currency,
		PublicBaseURL:   cfg.Server.PublicBaseURL,
	}
	if !provider.IsConfigured() {
		logger.Warn("Payment provider keys missing, envelopes will be refused")
	}
	return recharge.NewEnvelopeFactory(
		provider,
		recharge.ContextWorkspace{Fallback: recharge.StaticWorkspace(cfg.Wompi.WorkspaceID)},
		recharge.NewIntegritySigner(cfg.Wompi.IntegritySecret, logger),
		clk,
	)
}

func NewCheckoutUseCase(
	cfg config.Config,
	factory *recharge.EnvelopeFactory,
	attempts usecase.CheckoutAttemptRepository,
	sessions usecase.SessionStore,
	publisher usecase.EventPublisher,
	metrics usecase.CheckoutMetrics,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.CheckoutUseCase {
	return usecase.NewCheckoutUseCase(factory, cfg.Wompi.PricePerMinute, attempts, sessions, publisher, metrics, clk, logger)
}

func NewTransactionUseCase(
	cfg config.Config,
	provider usecase.TransactionProvider,
	rates usecase.ExchangeRateProvider,
	attempts usecase.CheckoutAttemptRepository,
	publisher usecase.EventPublisher,
	metrics usecase.CheckoutMetrics,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.TransactionUseCase {
	return usecase.NewTransactionUseCase(provider, rates, cfg.Exchange.FallbackRate, cfg.Wompi.Env, attempts, publisher, metrics, clk, logger)
}

func NewUsageUseCase(cfg config.Config, calls usecase.CallRecordRepository) usecase.UsageUseCase {
	return usecase.NewUsageUseCase(calls, cfg.Usage.Location())
}
