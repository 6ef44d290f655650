//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"minutes-recharge/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes message and detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		httperr.AbortWithError(c, http.StatusBadGateway, errors.New("hmac failed"), "Signature unavailable", gin.H{"retryable": true})

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Signature unavailable"},"detail":{"retryable":true}}`, rec.Body.String())
		require.Len(t, c.Errors, 1)
		assert.EqualError(t, c.Errors[0].Err, "hmac failed")
	})

	t.Run("nil error recorded as message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)

		require.Len(t, c.Errors, 1)
		assert.EqualError(t, c.Errors[0].Err, "Unauthorized")
		assert.JSONEq(t, `{"error":{"message":"Unauthorized"}}`, rec.Body.String())
	})

	t.Run("retryable detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		httperr.AbortRetryable(c, http.StatusBadGateway, errors.New("timeout"), "Payment provider unavailable")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Payment provider unavailable"},"detail":{"retryable":true}}`, rec.Body.String())
	})
}
