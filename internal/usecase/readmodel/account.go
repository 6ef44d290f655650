package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedAccountRM struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	WorkspaceID string     `json:"workspace_id"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
