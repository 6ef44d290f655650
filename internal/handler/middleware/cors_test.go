//go:build unit

package middleware_test

import (
	"log/slog"
	"net/http"
	stdhttptest "net/http/httptest"
	"strings"
	"testing"

	"minutes-recharge/internal/handler/middleware"
	"minutes-recharge/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig().CORS
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg, slog.New(slog.DiscardHandler)))
	r.GET("/api/checkout/config", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("許可されたオリジン", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodGet, "/api/checkout/config", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := stdhttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
	})

	t.Run("許可されていないオリジン", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodGet, "/api/checkout/config", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := stdhttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("設定済みのヘッダーは重複しない", func(t *testing.T) {
		before := len(cfg.AllowHeaders)
		middleware.NewCORSMiddleware(cfg, slog.New(slog.DiscardHandler))
		assert.Len(t, cfg.AllowHeaders, before)
	})
}
