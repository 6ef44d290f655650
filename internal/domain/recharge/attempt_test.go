//go:build unit

package recharge_test

import (
	"testing"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttempt(t *testing.T) {
	env, err := builder.NewEnvelopeBuilder().BuildDomain()
	require.NoError(t, err)

	accountID := uuid.New()
	attempt := recharge.NewAttempt(env, &accountID, builder.FixedNow)

	assert.NotEqual(t, uuid.Nil, attempt.ID())
	assert.Equal(t, env.Reference().String(), attempt.Reference())
	assert.Equal(t, "66666", attempt.WorkspaceID())
	assert.Equal(t, int64(30), attempt.Minutes())
	assert.Equal(t, int64(3000000), attempt.AmountInCents())
	assert.Equal(t, recharge.CurrencyCOP, attempt.Currency())
	assert.Equal(t, &accountID, attempt.AccountID())
	assert.Equal(t, recharge.AttemptIssued, attempt.Status())
	assert.Equal(t, builder.FixedNow, attempt.CreatedAt())

	t.Run("イベント", func(t *testing.T) {
		ev := recharge.EnvelopeIssued(env, builder.FixedNow)
		assert.Equal(t, recharge.EventEnvelopeIssued, ev.Type)
		assert.Equal(t, attempt.Reference(), ev.Key())
		assert.Equal(t, "COP", ev.Currency)
		assert.Equal(t, int64(3000000), ev.AmountInCents)
	})
}
