//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"minutes-recharge/internal/handler/dto/request"
	"minutes-recharge/internal/pkg/cookie"
	"minutes-recharge/tests/common/dbtest"
	"minutes-recharge/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginAccount(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := request.LoginRequest{Email: email, Password: password}
	rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	session := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	require.NotNil(t, session, "login for %s set no session cookie", email)
	require.True(t, session.HttpOnly)
	require.NotEmpty(t, session.Value)

	return session.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, workspaceID string) string {
	t.Helper()
	dbtest.CreateTestAccount(t, db, email, workspaceID)
	return LoginAccount(t, router, email, dbtest.DefaultPassword)
}

func LogoutAccount(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	rec := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
}
