//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.EnvelopeOutcome("issued")
	m.EnvelopeOutcome("issued")
	m.EnvelopeOutcome("misconfigured")
	m.PublishFailed("recharge.confirmed")
	m.ExchangeFallback()
	m.ObserveRequest(http.MethodPost, "/api/checkout/envelope", http.StatusCreated, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.envelopes.WithLabelValues("issued")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.envelopes.WithLabelValues("misconfigured")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.publishFailures.WithLabelValues("recharge.confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exchangeFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/checkout/envelope", "201")))

	t.Run("exposition", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `recharge_envelopes_total{outcome="issued"} 2`)
		assert.Contains(t, rec.Body.String(), "recharge_http_request_duration_seconds_bucket")
	})
}
