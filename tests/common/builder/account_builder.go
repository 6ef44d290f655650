//go:build unit || e2e

package builder

import (
	"time"

	"minutes-recharge/internal/domain/account"
	"minutes-recharge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	Email        string
	PasswordHash string
	WorkspaceID  string
	IsActive     bool
	Now          time.Time
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		WorkspaceID:  "192535",
		IsActive:     true,
		Now:          FixedNow,
	}
}

func (a *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(a)
	return a
}

func (a *AccountBuilder) BuildDomain() (*account.Account, error) {
	email, err := account.NewEmail(a.Email)
	if err != nil {
		return nil, err
	}
	return account.NewAccount(email, a.PasswordHash, a.WorkspaceID, a.Now)
}

func (a *AccountBuilder) BuildReadModel() *readmodel.AuthorizedAccountRM {
	return &readmodel.AuthorizedAccountRM{
		ID:          uuid.New(),
		Email:       a.Email,
		WorkspaceID: a.WorkspaceID,
		IsActive:    a.IsActive,
	}
}

func (a *AccountBuilder) WithEmail(email string) *AccountBuilder {
	a.Email = email
	return a
}

func (a *AccountBuilder) WithWorkspace(id string) *AccountBuilder {
	a.WorkspaceID = id
	return a
}

func (a *AccountBuilder) AsInactive() *AccountBuilder {
	a.IsActive = false
	return a
}
