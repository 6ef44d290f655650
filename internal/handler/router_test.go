//go:build unit

package handler_test

import (
	"log/slog"
	"net/http"
	"testing"

	"minutes-recharge/internal/handler"
	"minutes-recharge/internal/handler/api"
	"minutes-recharge/internal/handler/middleware"
	"minutes-recharge/internal/infra/metrics"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"
	"minutes-recharge/tests/common/httptest"
	usecasemock "minutes-recharge/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	checkout := usecasemock.NewMockCheckoutUseCase(ctrl)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	cfg := config.NewTestConfig()

	engine := gin.New()
	handler.NewRouter(engine, cfg, slog.New(slog.DiscardHandler), metrics.New(), handler.Handlers{
		Auth:         api.NewAuthHandler(usecasemock.NewMockAuthUseCase(ctrl), cfg),
		Checkout:     api.NewCheckoutHandler(checkout),
		Transactions: api.NewTransactionHandler(usecasemock.NewMockTransactionUseCase(ctrl)),
		Usage:        api.NewUsageHandler(usecasemock.NewMockUsageUseCase(ctrl)),
	}, middleware.NewAuthMiddleware(validator))

	t.Run("health", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("config is public", func(t *testing.T) {
		checkout.EXPECT().ProviderStatus().Return(usecase.ProviderStatus{Currency: "COP"})

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/checkout/config", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"configured":false,"currency":"COP"}`, rec.Body.String())
	})

	t.Run("envelopes require auth", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/api/checkout/envelopes", map[string]any{"minutes": 30}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("usage group requires auth", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/usage/calls", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("current reference with token", func(t *testing.T) {
		accountID := uuid.New()
		validator.EXPECT().ValidateToken("token").Return(accountID, "192535", nil)
		checkout.EXPECT().CurrentReference(gomock.Any(), usecase.Session{AccountID: accountID, WorkspaceID: "192535"}).
			Return("", false, nil)

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/checkout/current", nil, "token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics count routed requests", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/metrics", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `route="/health"`)
	})
}
