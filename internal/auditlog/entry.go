// Package auditlog records user actions and lists them per organization.
package auditlog

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single recorded action.
type Entry struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"userid"`
	OrganizationID int       `json:"organizationid"`
	Role           string    `json:"role"`
	Action         string    `json:"action"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecordCommand describes an action to record.
type RecordCommand struct {
	UserID         string
	OrganizationID int
	Role           string
	Action         string
}
