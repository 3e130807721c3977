package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account represents the authenticated HireWire user.
type Account struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	Role        string     `json:"role"` // "candidate" or "recruiter"
	CompanyName string     `json:"company_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	LastSeenAt  *time.Time `json:"last_seen_at,omitempty"`
}
