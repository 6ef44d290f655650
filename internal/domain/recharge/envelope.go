package recharge

import (
	"context"
	"strings"

	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultDescription = "Recarga de minutos"
	SummaryPath        = "/transaction-summary"
)

var labelPrinter = message.NewPrinter(language.Spanish)

type ProviderConfig struct {
	PublicKey       string
	IntegritySecret string
	Currency        string
	PublicBaseURL   string
}

func (c ProviderConfig) IsConfigured() bool {
	return strings.TrimSpace(c.PublicKey) != "" && strings.TrimSpace(c.IntegritySecret) != ""
}

func (c ProviderConfig) RedirectURL() string {
	return strings.TrimRight(c.PublicBaseURL, "/") + SummaryPath
}

type WorkspaceResolver interface {
	WorkspaceID(ctx context.Context) (string, error)
}

// StaticWorkspace resolves every request to one configured workspace.
type StaticWorkspace string

func (w StaticWorkspace) WorkspaceID(_ context.Context) (string, error) {
	return string(w), nil
}

type workspaceKey struct{}

func WithWorkspaceID(ctx context.Context, workspaceID string) context.Context {
	return context.WithValue(ctx, workspaceKey{}, workspaceID)
}

// ContextWorkspace prefers the workspace stored with WithWorkspaceID and
// falls back to a configured one.
type ContextWorkspace struct {
	Fallback StaticWorkspace
}

func (w ContextWorkspace) WorkspaceID(ctx context.Context) (string, error) {
	if id, ok := ctx.Value(workspaceKey{}).(string); ok && id != "" {
		return id, nil
	}
	return w.Fallback.WorkspaceID(ctx)
}

// Envelope is created once per checkout attempt and never mutated.
type Envelope struct {
	reference     Reference
	amountCOP     decimal.Decimal
	amountInCents int64
	currency      Currency
	signature     string
	description   string
	publicKey     string
	redirectURL   string
}

func (e *Envelope) Reference() Reference        { return e.reference }
func (e *Envelope) AmountCOP() decimal.Decimal  { return e.amountCOP }
func (e *Envelope) Minutes() int64              { return e.reference.Minutes() }
func (e *Envelope) AmountInCents() int64        { return e.amountInCents }
func (e *Envelope) Currency() Currency          { return e.currency }
func (e *Envelope) Signature() string           { return e.signature }
func (e *Envelope) Description() string         { return e.description }
func (e *Envelope) PublicKey() string           { return e.publicKey }
func (e *Envelope) RedirectURL() string         { return e.redirectURL }
func (e *Envelope) ButtonLabel() string         { return ButtonLabel(e.amountCOP) }
func (e *Envelope) WorkspaceID() string         { return e.reference.WorkspaceID() }
func (e *Envelope) AmountInCentsString() string { return decimal.NewFromInt(e.amountInCents).String() }

// ButtonLabel renders the checkout button text with Spanish digit grouping ("30.000").
func ButtonLabel(amountCOP decimal.Decimal) string {
	return labelPrinter.Sprintf("Pagar %v COP", number.Decimal(amountCOP.InexactFloat64()))
}

type EnvelopeFactory struct {
	Provider   ProviderConfig
	Workspaces WorkspaceResolver
	Signer     Signer
	Clock      clock.Clock
}

func NewEnvelopeFactory(provider ProviderConfig, workspaces WorkspaceResolver, signer Signer, clk clock.Clock) *EnvelopeFactory {
	return &EnvelopeFactory{
		Provider:   provider,
		Workspaces: workspaces,
		Signer:     signer,
		Clock:      clk,
	}
}

func (f *EnvelopeFactory) Assemble(ctx context.Context, amountCOP decimal.Decimal, minutes int64, description string) (*Envelope, error) {
	if !f.Provider.IsConfigured() {
		return nil, ErrMisconfiguredProvider
	}
	if !amountCOP.IsPositive() {
		return nil, errs.Wrap(ErrInvalidArgument, "amount must be greater than zero")
	}
	if minutes <= 0 {
		return nil, errs.Wrap(ErrInvalidArgument, "minutes must be greater than zero")
	}
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}

	workspaceID, err := f.Workspaces.WorkspaceID(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve workspace")
	}

	reference, err := NewReference(workspaceID, minutes, f.Clock)
	if err != nil {
		return nil, err
	}

	amountInCents, err := ChargeableMinorUnits(amountCOP)
	if err != nil {
		return nil, err
	}

	currency, err := NewCurrency(f.Provider.Currency)
	if err != nil {
		return nil, err
	}

	signature, ok, err := f.Signer.Sign(ctx, SignatureInput{
		Reference:     reference.String(),
		AmountInCents: amountInCents,
		Currency:      currency.String(),
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSignatureUnavailable
	}

	return &Envelope{
		reference:     reference,
		amountCOP:     amountCOP,
		amountInCents: amountInCents,
		currency:      currency,
		signature:     signature,
		description:   description,
		publicKey:     f.Provider.PublicKey,
		redirectURL:   f.Provider.RedirectURL(),
	}, nil
}

// PriceFor returns minutes * pricePerMinute in major units.
func PriceFor(minutes int64, pricePerMinute decimal.Decimal) decimal.Decimal {
	return pricePerMinute.Mul(decimal.NewFromInt(minutes))
}
