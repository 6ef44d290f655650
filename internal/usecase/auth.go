package usecase

import (
	"context"
	"time"

	"minutes-recharge/internal/domain/account"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/errs"
	"minutes-recharge/internal/pkg/jwt"
	"minutes-recharge/internal/pkg/password"
	"minutes-recharge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound    = errs.New("account not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrAccountInactive    = errs.New("account is inactive")
	ErrAccountExists      = errs.New("account already exists")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	Account     *readmodel.AuthorizedAccountRM
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials account.Credentials) (*LoginResult, error)
	GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*readmodel.AuthorizedAccountRM, error)
	Register(ctx context.Context, credentials account.Credentials, workspaceID string) (*readmodel.AuthorizedAccountRM, error)
}

type authUseCaseImpl struct {
	accounts   AccountRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(accounts AccountRepository, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		accounts:   accounts,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials account.Credentials) (*LoginResult, error) {
	acc, err := a.validateAccount(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(acc.ID, acc.WorkspaceID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	if err := a.accounts.UpdateLastLogin(ctx, acc.ID, now); err != nil {
		return nil, err
	}
	acc.LastLoginAt = &now

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
		Account:     acc,
	}, nil
}

func (a *authUseCaseImpl) validateAccount(ctx context.Context, credentials account.Credentials) (*readmodel.AuthorizedAccountRM, error) {
	acc, hashedPassword, err := a.accounts.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !acc.IsActive {
		return nil, ErrAccountInactive
	}

	return acc, nil
}

func (a *authUseCaseImpl) GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*readmodel.AuthorizedAccountRM, error) {
	acc, err := a.accounts.FindByID(ctx, accountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if !acc.IsActive {
		return nil, ErrAccountInactive
	}

	return acc, nil
}

func (a *authUseCaseImpl) Register(ctx context.Context, credentials account.Credentials, workspaceID string) (*readmodel.AuthorizedAccountRM, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	acc, err := account.NewAccount(credentials.Email(), hash, workspaceID, a.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := a.accounts.Create(ctx, acc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	return &readmodel.AuthorizedAccountRM{
		ID:          acc.ID(),
		Email:       acc.Email().Value(),
		WorkspaceID: acc.WorkspaceID(),
		IsActive:    acc.IsActive(),
	}, nil
}
