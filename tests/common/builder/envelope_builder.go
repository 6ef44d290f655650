//go:build unit || e2e

package builder

import (
	"context"
	"log/slog"
	"time"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

var FixedNow = time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC)

type EnvelopeBuilder struct {
	PublicKey       string
	IntegritySecret string
	Currency        string
	PublicBaseURL   string
	WorkspaceID     string
	Now             time.Time
	Signer          recharge.Signer

	AmountCOP   decimal.Decimal
	Minutes     int64
	Description string
}

func NewEnvelopeBuilder() *EnvelopeBuilder {
	return &EnvelopeBuilder{
		PublicKey:       "pub_test_abc123",
		IntegritySecret: "test_integrity_secret",
		Currency:        "COP",
		PublicBaseURL:   "http://localhost:3000",
		WorkspaceID:     "66666",
		Now:             FixedNow,
		AmountCOP:       decimal.NewFromInt(30000),
		Minutes:         30,
		Description:     "Recarga de 30 minutos",
	}
}

func (b *EnvelopeBuilder) With(mutate func(*EnvelopeBuilder)) *EnvelopeBuilder {
	mutate(b)
	return b
}

func (b *EnvelopeBuilder) Provider() recharge.ProviderConfig {
	return recharge.ProviderConfig{
		PublicKey:       b.PublicKey,
		IntegritySecret: b.IntegritySecret,
		Currency:        b.Currency,
		PublicBaseURL:   b.PublicBaseURL,
	}
}

func (b *EnvelopeBuilder) BuildFactory() *recharge.EnvelopeFactory {
	signer := b.Signer
	if signer == nil {
		signer = recharge.NewIntegritySigner(b.IntegritySecret, slog.New(slog.DiscardHandler))
	}
	return recharge.NewEnvelopeFactory(
		b.Provider(),
		recharge.ContextWorkspace{Fallback: recharge.StaticWorkspace(b.WorkspaceID)},
		signer,
		clock.NewMockClock(b.Now),
	)
}

func (b *EnvelopeBuilder) BuildDomain() (*recharge.Envelope, error) {
	return b.BuildFactory().Assemble(context.Background(), b.AmountCOP, b.Minutes, b.Description)
}

func (b *EnvelopeBuilder) WithAmount(amount string) *EnvelopeBuilder {
	b.AmountCOP = decimal.RequireFromString(amount)
	return b
}

func (b *EnvelopeBuilder) WithMinutes(minutes int64) *EnvelopeBuilder {
	b.Minutes = minutes
	return b
}

func (b *EnvelopeBuilder) WithCurrency(currency string) *EnvelopeBuilder {
	b.Currency = currency
	return b
}

func (b *EnvelopeBuilder) WithWorkspace(id string) *EnvelopeBuilder {
	b.WorkspaceID = id
	return b
}

func (b *EnvelopeBuilder) WithSigner(signer recharge.Signer) *EnvelopeBuilder {
	b.Signer = signer
	return b
}

func (b *EnvelopeBuilder) WithoutPublicKey() *EnvelopeBuilder {
	b.PublicKey = ""
	return b
}

func (b *EnvelopeBuilder) WithoutSecret() *EnvelopeBuilder {
	b.IntegritySecret = ""
	return b
}
