package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a dashboard login bound to one workspace.
type Account struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	workspaceID  string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
}

func NewAccount(email Email, passwordHash, workspaceID string, now time.Time) (*Account, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" || strings.ContainsAny(workspaceID, "-=") {
		return nil, ErrInvalidWorkspace
	}
	return &Account{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		workspaceID:  workspaceID,
		isActive:     true,
		createdAt:    now,
	}, nil
}

func (a *Account) ID() uuid.UUID         { return a.id }
func (a *Account) Email() Email          { return a.email }
func (a *Account) PasswordHash() string  { return a.passwordHash }
func (a *Account) WorkspaceID() string   { return a.workspaceID }
func (a *Account) LastLogin() *time.Time { return a.lastLogin }
func (a *Account) IsActive() bool        { return a.isActive }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }
