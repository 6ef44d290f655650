//go:build unit

package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"minutes-recharge/internal/handler/middleware"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observed struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	calls []observed
}

func (o *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	o.calls = append(o.calls, observed{method: method, route: route, status: status})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &fakeObserver{}

	r := gin.New()
	r.Use(middleware.Metrics(obs))
	r.GET("/api/transactions/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	httptest.PerformRequest(t, r, http.MethodGet, "/api/transactions/abc", nil, "")
	httptest.PerformRequest(t, r, http.MethodGet, "/nope", nil, "")

	require.Len(t, obs.calls, 2)
	assert.Equal(t, observed{method: "GET", route: "/api/transactions/:id", status: http.StatusNoContent}, obs.calls[0])
	assert.Equal(t, "unmatched", obs.calls[1].route)
	assert.Equal(t, http.StatusNotFound, obs.calls[1].status)
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(&middleware.ContextHandler{Handler: slog.NewJSONHandler(&buf, nil)})
	l := middleware.WrapLogger(logger, config.NewTestConfig().Log)

	r := gin.New()
	r.Use(l.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		assert.Equal(t, middleware.GetRequestID(c), middleware.RequestIDFromContext(c.Request.Context()))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")

		id := rec.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.Contains(t, buf.String(), `"msg":"Request completed"`)
		assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	})

	t.Run("reuses incoming request id", func(t *testing.T) {
		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-1")
		rec := stdhttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-1"})
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CustomRecovery(slog.New(slog.DiscardHandler)))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, middleware.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, middleware.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, middleware.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, middleware.ParseLevel("verbose"))
}
