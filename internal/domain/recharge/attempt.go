package recharge

import (
	"time"

	"github.com/google/uuid"
)

type AttemptStatus string

const (
	AttemptIssued    AttemptStatus = "issued"
	AttemptCanceled  AttemptStatus = "canceled"
	AttemptConfirmed AttemptStatus = "confirmed"
)

// Attempt records one issued envelope. The signature is not kept.
type Attempt struct {
	id            uuid.UUID
	reference     string
	workspaceID   string
	minutes       int64
	amountInCents int64
	currency      Currency
	accountID     *uuid.UUID
	status        AttemptStatus
	createdAt     time.Time
}

func NewAttempt(env *Envelope, accountID *uuid.UUID, now time.Time) *Attempt {
	return &Attempt{
		id:            uuid.New(),
		reference:     env.Reference().String(),
		workspaceID:   env.WorkspaceID(),
		minutes:       env.Minutes(),
		amountInCents: env.AmountInCents(),
		currency:      env.Currency(),
		accountID:     accountID,
		status:        AttemptIssued,
		createdAt:     now,
	}
}

func (a *Attempt) ID() uuid.UUID         { return a.id }
func (a *Attempt) Reference() string     { return a.reference }
func (a *Attempt) WorkspaceID() string   { return a.workspaceID }
func (a *Attempt) Minutes() int64        { return a.minutes }
func (a *Attempt) AmountInCents() int64  { return a.amountInCents }
func (a *Attempt) Currency() Currency    { return a.currency }
func (a *Attempt) AccountID() *uuid.UUID { return a.accountID }
func (a *Attempt) Status() AttemptStatus { return a.status }
func (a *Attempt) CreatedAt() time.Time  { return a.createdAt }
