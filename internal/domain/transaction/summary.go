package transaction

import (
	"time"

	"minutes-recharge/internal/domain/recharge"

	"github.com/shopspring/decimal"
)

const DollarPrecision = 2

// ProviderTransaction is the subset of the provider's transaction record the
// confirmation page needs.
type ProviderTransaction struct {
	ID                string
	AmountInCents     int64
	Currency          string
	Status            Status
	Reference         string
	CreatedAt         time.Time
	PaymentMethodType PaymentMethod
	CardType          string
	CardBrand         string
	CardLastFour      string
}

type Summary struct {
	ID                string
	Status            Status
	StatusMessage     string
	Reference         string
	AmountUSD         decimal.Decimal
	AmountCOP         decimal.Decimal
	Currency          string
	CreatedAt         time.Time
	PaymentMethod     PaymentMethod
	PaymentMethodName string
	CardType          string
	CardBrand         string
	CardLastFour      string
	WorkspaceID       string
	Minutes           int64
	ReferenceStatus   recharge.Completeness
}

// NewSummary converts the charged amount with copPerUSD and recovers the
// recharge details from the reference. Missing reference fields stay zero.
func NewSummary(tx ProviderTransaction, copPerUSD decimal.Decimal) *Summary {
	charged := recharge.FromMinorUnits(tx.AmountInCents)

	var amountCOP, amountUSD decimal.Decimal
	if tx.Currency == recharge.CurrencyCOP.String() {
		amountCOP = charged
		if copPerUSD.IsPositive() {
			amountUSD = charged.DivRound(copPerUSD, DollarPrecision)
		}
	} else {
		amountUSD = charged
		amountCOP = charged.Mul(copPerUSD)
	}

	parsed := recharge.ParseReference(tx.Reference)
	workspaceID, _ := parsed.WorkspaceID()
	minutes, _ := parsed.Minutes()

	s := &Summary{
		ID:                tx.ID,
		Status:            tx.Status,
		StatusMessage:     tx.Status.Message(),
		Reference:         tx.Reference,
		AmountUSD:         amountUSD,
		AmountCOP:         amountCOP,
		Currency:          tx.Currency,
		CreatedAt:         tx.CreatedAt,
		PaymentMethod:     tx.PaymentMethodType,
		PaymentMethodName: tx.PaymentMethodType.DisplayName(),
		CardBrand:         tx.CardBrand,
		CardLastFour:      tx.CardLastFour,
		WorkspaceID:       workspaceID,
		Minutes:           minutes,
		ReferenceStatus:   parsed.Completeness(),
	}
	if tx.PaymentMethodType == MethodCard {
		s.CardType = tx.CardType
	}
	return s
}
