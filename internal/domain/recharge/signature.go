package recharge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
)

const secretPlaceholder = "[SECRET_HIDDEN]"

type SignatureInput struct {
	Reference     string
	AmountInCents int64
	Currency      string
}

// Signer computes the provider integrity signature.
// A non-nil error means the input was rejected. ok == false with a nil error
// means the hashing backend could not produce a digest and the caller may retry.
type Signer interface {
	Sign(ctx context.Context, in SignatureInput) (signature string, ok bool, err error)
}

type IntegritySigner struct {
	secret string
	logger *slog.Logger
}

func NewIntegritySigner(secret string, logger *slog.Logger) *IntegritySigner {
	if logger == nil {
		logger = slog.Default()
	}
	return &IntegritySigner{secret: secret, logger: logger}
}

// Sign hashes reference + amountInCents + currency + secret with SHA-256.
func (s *IntegritySigner) Sign(ctx context.Context, in SignatureInput) (string, bool, error) {
	currency, err := NewCurrency(in.Currency)
	if err != nil {
		return "", false, err
	}

	amount := strconv.FormatInt(in.AmountInCents, 10)
	s.logger.DebugContext(ctx, "signing checkout payload",
		slog.String("payload", in.Reference+amount+currency.String()+secretPlaceholder),
	)

	if s.secret == "" {
		s.logger.ErrorContext(ctx, "integrity secret is not loaded")
		return "", false, nil
	}

	h := sha256.New()
	if _, err := h.Write([]byte(in.Reference + amount + currency.String() + s.secret)); err != nil {
		s.logger.ErrorContext(ctx, "failed to hash checkout payload", slog.String("error", err.Error()))
		return "", false, nil
	}

	return hex.EncodeToString(h.Sum(nil)), true, nil
}
