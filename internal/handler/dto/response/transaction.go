package response

import (
	"time"

	"minutes-recharge/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

type TransactionSummaryResponse struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	StatusMessage     string          `json:"statusMessage"`
	Reference         string          `json:"reference"`
	AmountUSD         decimal.Decimal `json:"amountUSD"`
	AmountCOP         decimal.Decimal `json:"amountCOP"`
	Currency          string          `json:"currency"`
	CreatedAt         time.Time       `json:"createdAt"`
	PaymentMethod     string          `json:"paymentMethod"`
	PaymentMethodName string          `json:"paymentMethodName"`
	CardType          string          `json:"cardType,omitempty"`
	CardBrand         string          `json:"cardBrand,omitempty"`
	CardLastFour      string          `json:"cardLastFour,omitempty"`
	WorkspaceID       string          `json:"workspaceId,omitempty"`
	Minutes           int64           `json:"minutes,omitempty"`
	ReferenceStatus   string          `json:"referenceStatus"`
}

func FromSummary(s *transaction.Summary) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		ID:                s.ID,
		Status:            s.Status.String(),
		StatusMessage:     s.StatusMessage,
		Reference:         s.Reference,
		AmountUSD:         s.AmountUSD,
		AmountCOP:         s.AmountCOP,
		Currency:          s.Currency,
		CreatedAt:         s.CreatedAt,
		PaymentMethod:     string(s.PaymentMethod),
		PaymentMethodName: s.PaymentMethodName,
		CardType:          s.CardType,
		CardBrand:         s.CardBrand,
		CardLastFour:      s.CardLastFour,
		WorkspaceID:       s.WorkspaceID,
		Minutes:           s.Minutes,
		ReferenceStatus:   s.ReferenceStatus.String(),
	}
}
