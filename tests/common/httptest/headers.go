//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders treats an empty expected value as "header must be absent".
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		got, ok := w.Header()[http.CanonicalHeaderKey(name)]
		if want == "" {
			assert.False(t, ok, "header %s should not be set", name)
			continue
		}
		if assert.True(t, ok, "header %s missing", name) {
			assert.Equal(t, want, got[0], "header %s", name)
		}
	}
}
