//go:build unit

package recharge_test

import (
	"context"
	"testing"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSigner struct {
	sig   string
	ok    bool
	err   error
	calls int
}

func (s *stubSigner) Sign(_ context.Context, _ recharge.SignatureInput) (string, bool, error) {
	s.calls++
	return s.sig, s.ok, s.err
}

type testCase struct {
	name   string
	mutate func(*builder.EnvelopeBuilder)
	errIs  error
}

func TestEnvelopeFactory_Assemble(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewEnvelopeBuilder()
		env, err := b.BuildFactory().Assemble(context.Background(), b.AmountCOP, b.Minutes, b.Description)
		require.NoError(t, err)
		require.NotNil(t, env)

		assert.Equal(t, int64(3000000), env.AmountInCents())
		assert.Equal(t, "3000000", env.AmountInCentsString())
		assert.Equal(t, recharge.CurrencyCOP, env.Currency())
		assert.Equal(t, "aee2814cba8ba9d93d901f57ea0310cd3767e26b0e5337007e9d98b879ca5263", env.Signature())
		assert.Regexp(t, hexDigest, env.Signature())
		assert.Equal(t, "Recarga de 30 minutos", env.Description())
		assert.Equal(t, "pub_test_abc123", env.PublicKey())
		assert.Equal(t, "http://localhost:3000/transaction-summary", env.RedirectURL())
		assert.Equal(t, "Pagar 30.000 COP", env.ButtonLabel())
		assert.Equal(t, int64(30), env.Minutes())
		assert.True(t, decimal.NewFromInt(30000).Equal(env.AmountCOP()))

		parsed := recharge.ParseReference(env.Reference().String())
		minutes, ok := parsed.Minutes()
		require.True(t, ok)
		assert.Equal(t, int64(30), minutes)
		ws, _ := parsed.WorkspaceID()
		assert.Equal(t, "66666", ws)
	})

	t.Run("説明が空ならデフォルト", func(t *testing.T) {
		b := builder.NewEnvelopeBuilder()
		env, err := b.BuildFactory().Assemble(context.Background(), b.AmountCOP, b.Minutes, "  ")
		require.NoError(t, err)
		assert.Equal(t, recharge.DefaultDescription, env.Description())
	})

	t.Run("小数金額は四捨五入", func(t *testing.T) {
		b := builder.NewEnvelopeBuilder().WithAmount("1999.995")
		env, err := b.BuildFactory().Assemble(context.Background(), b.AmountCOP, b.Minutes, b.Description)
		require.NoError(t, err)
		assert.Equal(t, int64(200000), env.AmountInCents())
	})

	t.Run("設定とパラメータ検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "公開鍵なしNG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithoutPublicKey() },
				errIs:  recharge.ErrMisconfiguredProvider,
			},
			{
				name:   "シークレットなしNG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithoutSecret() },
				errIs:  recharge.ErrMisconfiguredProvider,
			},
			{
				name: "設定不備は金額検証より優先",
				mutate: func(b *builder.EnvelopeBuilder) {
					b.WithoutSecret().WithAmount("0")
				},
				errIs: recharge.ErrMisconfiguredProvider,
			},
			{
				name:   "金額0NG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithAmount("0") },
				errIs:  recharge.ErrInvalidArgument,
			},
			{
				name:   "負の金額NG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithAmount("-100") },
				errIs:  recharge.ErrInvalidArgument,
			},
			{
				name:   "0セントに丸められる金額NG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithAmount("0.004") },
				errIs:  recharge.ErrInvalidArgument,
			},
			{
				name:   "int64を超える金額NG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithAmount("100000000000000000000") },
				errIs:  recharge.ErrInvalidArgument,
			},
			{
				name:   "0分NG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithMinutes(0) },
				errIs:  recharge.ErrInvalidArgument,
			},
			{
				name:   "不正なワークスペースNG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithWorkspace("a-b") },
				errIs:  recharge.ErrInvalidArgument,
			},
			{
				name:   "不正な通貨NG",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithCurrency("EUR") },
				errIs:  recharge.ErrInvalidCurrency,
			},
			{
				name:   "USD OK",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithCurrency("USD") },
			},
			{
				name:   "空の通貨はCOP",
				mutate: func(b *builder.EnvelopeBuilder) { b.WithCurrency("") },
			},
		})
	})

	t.Run("署名不可はErrSignatureUnavailable", func(t *testing.T) {
		signer := &stubSigner{ok: false}
		b := builder.NewEnvelopeBuilder().WithSigner(signer)
		env, err := b.BuildFactory().Assemble(context.Background(), b.AmountCOP, b.Minutes, b.Description)
		require.ErrorIs(t, err, recharge.ErrSignatureUnavailable)
		assert.Nil(t, env)
		assert.Equal(t, 1, signer.calls)
	})

	t.Run("検証エラー時は署名しない", func(t *testing.T) {
		signer := &stubSigner{sig: "x", ok: true}
		b := builder.NewEnvelopeBuilder().WithSigner(signer).WithMinutes(-1)
		_, err := b.BuildFactory().Assemble(context.Background(), b.AmountCOP, b.Minutes, b.Description)
		require.ErrorIs(t, err, recharge.ErrInvalidArgument)
		assert.Zero(t, signer.calls)
	})

	t.Run("桁あふれする金額は署名しない", func(t *testing.T) {
		signer := &stubSigner{sig: "x", ok: true}
		b := builder.NewEnvelopeBuilder().WithSigner(signer).WithAmount("1e20")
		_, err := b.BuildFactory().Assemble(context.Background(), b.AmountCOP, b.Minutes, b.Description)
		require.ErrorIs(t, err, recharge.ErrInvalidArgument)
		assert.Zero(t, signer.calls)
	})
}

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, "Pagar 30.000 COP", recharge.ButtonLabel(decimal.NewFromInt(30000)))
	assert.Equal(t, "Pagar 150.000 COP", recharge.ButtonLabel(decimal.NewFromInt(150000)))
}

func TestPriceFor(t *testing.T) {
	assert.True(t, decimal.NewFromInt(30000).Equal(recharge.PriceFor(30, decimal.NewFromInt(1000))))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewEnvelopeBuilder().With(c.mutate)
			actual, err := b.BuildFactory().Assemble(context.Background(), b.AmountCOP, b.Minutes, b.Description)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestContextWorkspace(t *testing.T) {
	resolver := recharge.ContextWorkspace{Fallback: recharge.StaticWorkspace("66666")}

	id, err := resolver.WorkspaceID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "66666", id)

	id, err = resolver.WorkspaceID(recharge.WithWorkspaceID(context.Background(), "192535"))
	require.NoError(t, err)
	assert.Equal(t, "192535", id)

	t.Run("コンテキストのワークスペースが参照に入る", func(t *testing.T) {
		b := builder.NewEnvelopeBuilder()
		ctx := recharge.WithWorkspaceID(context.Background(), "192535")
		env, err := b.BuildFactory().Assemble(ctx, b.AmountCOP, b.Minutes, b.Description)
		require.NoError(t, err)
		assert.Equal(t, "192535", env.WorkspaceID())
	})
}
