package jwt

import (
	"errors"
	"time"

	"minutes-recharge/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const Issuer = "minutes-recharge"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims binds a dashboard session to one account inside one workspace.
// Subject repeats AccountID so generic JWT tooling can read it.
type Claims struct {
	AccountID   uuid.UUID `json:"account_id"`
	WorkspaceID string    `json:"workspace_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret   []byte
	lifetime time.Duration
	clock    clock.Clock
	parser   *jwt.Parser
}

func NewService(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Service{
		secret:   []byte(secretKey),
		lifetime: tokenDuration,
		clock:    clk,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(clk.Now),
		),
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.lifetime
}

func (s *Service) GenerateToken(accountID uuid.UUID, workspaceID string) (string, error) {
	issuedAt := s.clock.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AccountID:   accountID,
		WorkspaceID: workspaceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.lifetime)),
		},
	}).SignedString(s.secret)
}

// ValidateToken reports ErrExpiredToken separately so callers can prompt a
// fresh login instead of treating the token as forged.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.AccountID == uuid.Nil || claims.WorkspaceID == "":
		return nil, ErrInvalidToken
	}
	return claims, nil
}
