package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"

	"github.com/shopspring/decimal"
)

type ratesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

type exchangeClient struct {
	client *http.Client
	url    string
	logger *slog.Logger
}

func NewExchangeClient(cfg config.ExchangeConfig, logger *slog.Logger) usecase.ExchangeRateProvider {
	return &exchangeClient{
		client: &http.Client{Timeout: cfg.Timeout},
		url:    cfg.URL,
		logger: logger,
	}
}

// COPPerUSD fetches a fresh quote on every call.
func (c *exchangeClient) COPPerUSD(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Zero, infra.WrapErr(c.logger, infra.KindUpstream, "failed to build exchange request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, infra.WrapErr(c.logger, infra.KindUpstream, "exchange lookup failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decimal.Zero, infra.WrapErr(c.logger, infra.KindUpstream, "exchange lookup failed",
			fmt.Errorf("error response: %s", resp.Status))
	}

	var payload ratesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return decimal.Zero, infra.WrapErr(c.logger, infra.KindBadResponse, "failed to decode exchange rates", err)
	}

	rate, ok := payload.Rates["COP"]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, infra.WrapErr(c.logger, infra.KindBadResponse, "exchange response without COP rate", nil)
	}
	return rate, nil
}
