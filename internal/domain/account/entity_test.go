//go:build unit

package account_test

import (
	"testing"

	"minutes-recharge/internal/domain/account"
	"minutes-recharge/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(account.Account{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.AccountBuilder)
	errIs  error
}

func TestAccount(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewAccountBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := account.NewEmail("test@example.com")
		expected, err := account.NewAccount(email, "hashed_password", "192535", builder.FixedNow)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Account mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "192535", actual.WorkspaceID())
		assert.Equal(t, builder.FixedNow, actual.CreatedAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字は小文字に正規化OK",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("Admin@Example.COM") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("") },
				errIs:  account.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  account.ErrInvalidEmail,
			},
		})
	})

	t.Run("ワークスペース検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空のワークスペースNG",
				mutate: func(b *builder.AccountBuilder) { b.WithWorkspace(" ") },
				errIs:  account.ErrInvalidWorkspace,
			},
			{
				name:   "区切り文字を含むNG",
				mutate: func(b *builder.AccountBuilder) { b.WithWorkspace("ws-1") },
				errIs:  account.ErrInvalidWorkspace,
			},
		})
	})
}

func TestCredentials(t *testing.T) {
	creds, err := account.NewCredentials(" User@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", creds.Email().Value())
	assert.Equal(t, "password123", creds.Password().Value())

	_, err = account.NewCredentials("user@example.com", "short")
	require.ErrorIs(t, err, account.ErrPasswordTooWeak)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAccountBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
