package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"minutes-recharge/internal/domain/transaction"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"
)

type wompiTransaction struct {
	ID                string    `json:"id"`
	AmountInCents     int64     `json:"amount_in_cents"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	Reference         string    `json:"reference"`
	CreatedAt         time.Time `json:"created_at"`
	PaymentMethodType string    `json:"payment_method_type"`
	PaymentMethod     struct {
		Extra struct {
			CardType string `json:"card_type"`
			Brand    string `json:"brand"`
			LastFour string `json:"last_four"`
		} `json:"extra"`
	} `json:"payment_method"`
}

type wompiResponse struct {
	Data *wompiTransaction `json:"data"`
}

type wompiClient struct {
	client        *http.Client
	sandboxURL    string
	productionURL string
	logger        *slog.Logger
}

func NewWompiClient(cfg config.WompiConfig, logger *slog.Logger) usecase.TransactionProvider {
	return &wompiClient{
		client:        &http.Client{Timeout: cfg.Timeout},
		sandboxURL:    strings.TrimRight(cfg.SandboxURL, "/"),
		productionURL: strings.TrimRight(cfg.ProductionURL, "/"),
		logger:        logger,
	}
}

// maxResponseBytes caps provider response bodies; a transaction is a few KB.
const maxResponseBytes = 1 << 20

// GetTransaction queries the sandbox host when env is "test" and production otherwise.
func (c *wompiClient) GetTransaction(ctx context.Context, env, transactionID string) (*transaction.ProviderTransaction, error) {
	base := c.productionURL
	if usecase.ProviderEnv(env) == usecase.EnvTest {
		base = c.sandboxURL
	}
	endpoint := base + "/transactions/" + url.PathEscape(transactionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindUpstream, "failed to build transaction request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindUpstream, "transaction lookup failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindUpstream, "failed to read transaction response", err)
	}
	if len(body) > maxResponseBytes {
		return nil, infra.WrapErr(c.logger, infra.KindBadResponse, "transaction response too large", nil)
	}

	c.logger.DebugContext(ctx, "Transaction lookup",
		slog.String("url", endpoint),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusNotFound {
		return nil, infra.WrapErr(c.logger, infra.KindNotFound, "transaction not found", nil)
	}
	if resp.StatusCode >= 400 {
		return nil, infra.WrapErr(c.logger, infra.KindUpstream, "transaction lookup failed",
			fmt.Errorf("error response: %s", resp.Status))
	}

	var payload wompiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindBadResponse, "failed to decode transaction", err)
	}
	if payload.Data == nil {
		return nil, infra.WrapErr(c.logger, infra.KindNotFound, "transaction response without data", nil)
	}

	tx := payload.Data
	return &transaction.ProviderTransaction{
		ID:                tx.ID,
		AmountInCents:     tx.AmountInCents,
		Currency:          tx.Currency,
		Status:            transaction.Status(tx.Status),
		Reference:         tx.Reference,
		CreatedAt:         tx.CreatedAt,
		PaymentMethodType: transaction.PaymentMethod(tx.PaymentMethodType),
		CardType:          tx.PaymentMethod.Extra.CardType,
		CardBrand:         tx.PaymentMethod.Extra.Brand,
		CardLastFour:      tx.PaymentMethod.Extra.LastFour,
	}, nil
}
