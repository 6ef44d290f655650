//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, accountID uuid.UUID, workspaceID string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock()).GenerateToken(accountID, workspaceID)
	require.NoError(t, err)
	return token
}

// signed an hour ago with a one minute lifetime
func (h *JWTHelper) CreateExpiredToken(t *testing.T, accountID uuid.UUID, workspaceID string) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-time.Hour))
	token, err := jwt.NewService(h.cfg.Secret, time.Minute, past).GenerateToken(accountID, workspaceID)
	require.NoError(t, err)
	return token
}
