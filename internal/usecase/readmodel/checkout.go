package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutAttemptRM struct {
	ID            uuid.UUID
	Reference     string
	WorkspaceID   string
	Minutes       int64
	AmountInCents int64
	Currency      string
	AccountID     *uuid.UUID
	Status        string
	CreatedAt     time.Time
}
