package request

import (
	"minutes-recharge/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateEnvelopeRequest struct {
	Minutes     int64            `json:"minutes" binding:"required,gt=0"`
	AmountCOP   *decimal.Decimal `json:"amountCOP,omitempty"`
	Description string           `json:"description" binding:"max=255"`
}

func (r *CreateEnvelopeRequest) ToParams() usecase.CreateEnvelopeParams {
	return usecase.CreateEnvelopeParams{
		Minutes:     r.Minutes,
		AmountCOP:   r.AmountCOP,
		Description: r.Description,
	}
}
