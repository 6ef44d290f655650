//go:build unit

package client_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"minutes-recharge/internal/domain/transaction"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/infra/client"
	"minutes-recharge/internal/pkg/config"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const txJSON = `{
  "data": {
    "id": "12345-1741964999-67890",
    "amount_in_cents": 3000000,
    "currency": "COP",
    "status": "APPROVED",
    "reference": "workspace_id=66666-minutes=30-timestamp=1741964966535-type=RECARGA_MINUTOS",
    "created_at": "2025-03-14T15:09:59.123Z",
    "payment_method_type": "CARD",
    "payment_method": {"extra": {"card_type": "CREDIT", "brand": "VISA", "last_four": "4242"}}
  }
}`

func TestWompiClient_GetTransaction(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	cfg := config.NewTestConfig().Wompi

	tests := []struct {
		name         string
		env          string
		mockResponse func()
		expectKind   infra.ErrorKind
	}{
		{
			name: "Sandbox",
			env:  "test",
			mockResponse: func() {
				gock.New("https://sandbox.wompi.co").
					Get("/v1/transactions/12345-1741964999-67890").
					Reply(200).
					BodyString(txJSON)
			},
		},
		{
			name: "Production",
			env:  "",
			mockResponse: func() {
				gock.New("https://production.wompi.co").
					Get("/v1/transactions/12345-1741964999-67890").
					Reply(200).
					BodyString(txJSON)
			},
		},
		{
			name: "NotFound",
			env:  "test",
			mockResponse: func() {
				gock.New("https://sandbox.wompi.co").
					Get("/v1/transactions/12345-1741964999-67890").
					Reply(404).
					JSON(map[string]any{"error": map[string]string{"type": "NOT_FOUND_ERROR"}})
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "NoData",
			env:  "test",
			mockResponse: func() {
				gock.New("https://sandbox.wompi.co").
					Get("/v1/transactions/12345-1741964999-67890").
					Reply(200).
					JSON(map[string]any{})
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "OversizedBody",
			env:  "test",
			mockResponse: func() {
				gock.New("https://sandbox.wompi.co").
					Get("/v1/transactions/12345-1741964999-67890").
					Reply(200).
					BodyString(`{"data":{"id":"` + strings.Repeat("x", 2<<20) + `"}}`)
			},
			expectKind: infra.KindBadResponse,
		},
		{
			name: "ServerError",
			env:  "test",
			mockResponse: func() {
				gock.New("https://sandbox.wompi.co").
					Get("/v1/transactions/12345-1741964999-67890").
					Reply(502)
			},
			expectKind: infra.KindUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer gock.Off()
			tt.mockResponse()

			c := client.NewWompiClient(cfg, logger)
			tx, err := c.GetTransaction(context.Background(), tt.env, "12345-1741964999-67890")

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind))
				assert.Nil(t, tx)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(3000000), tx.AmountInCents)
				assert.Equal(t, transaction.StatusApproved, tx.Status)
				assert.Equal(t, transaction.MethodCard, tx.PaymentMethodType)
				assert.Equal(t, "CREDIT", tx.CardType)
				assert.Equal(t, "VISA", tx.CardBrand)
				assert.Equal(t, "4242", tx.CardLastFour)
				assert.Equal(t, 2025, tx.CreatedAt.Year())
			}
			assert.True(t, gock.IsDone())
		})
	}
}
