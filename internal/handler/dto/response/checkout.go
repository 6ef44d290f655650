package response

import (
	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/usecase"

	"github.com/shopspring/decimal"
)

type EnvelopeResponse struct {
	Reference     string          `json:"reference"`
	AmountCOP     decimal.Decimal `json:"amountCOP"`
	Minutes       int64           `json:"minutes"`
	AmountInCents string          `json:"amountInCents"`
	Currency      string          `json:"currency"`
	Signature     string          `json:"signature"`
	Description   string          `json:"description"`
	PublicKey     string          `json:"publicKey"`
	RedirectURL   string          `json:"redirectUrl"`
	ButtonLabel   string          `json:"buttonLabel"`
}

func FromEnvelope(env *recharge.Envelope) EnvelopeResponse {
	return EnvelopeResponse{
		Reference:     env.Reference().String(),
		AmountCOP:     env.AmountCOP(),
		Minutes:       env.Minutes(),
		AmountInCents: env.AmountInCentsString(),
		Currency:      env.Currency().String(),
		Signature:     env.Signature(),
		Description:   env.Description(),
		PublicKey:     env.PublicKey(),
		RedirectURL:   env.RedirectURL(),
		ButtonLabel:   env.ButtonLabel(),
	}
}

type ProviderStatusResponse struct {
	Configured bool   `json:"configured"`
	PublicKey  string `json:"publicKey,omitempty"`
	Currency   string `json:"currency"`
}

func FromProviderStatus(s usecase.ProviderStatus) ProviderStatusResponse {
	return ProviderStatusResponse{
		Configured: s.Configured,
		PublicKey:  s.PublicKey,
		Currency:   s.Currency,
	}
}

type CurrentReferenceResponse struct {
	Active    bool   `json:"active"`
	Reference string `json:"reference,omitempty"`
}
