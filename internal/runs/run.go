// Package runs implements the workflow run audit trail: every processed
// email is recorded with its classification, outcome, and terminal message.
package runs

import (
	"time"

	"github.com/google/uuid"
)

// Run is the persisted record of one workflow run.
type Run struct {
	ID          uuid.UUID `json:"id"`
	SenderEmail string    `json:"sender_email"`
	Subject     string    `json:"subject"`
	EmailType   string    `json:"email_type"`
	Outcome     string    `json:"outcome"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordCommand carries the data needed to persist a new run record.
type RecordCommand struct {
	ID          uuid.UUID
	SenderEmail string
	Subject     string
	EmailType   string
	Outcome     string
	Message     string
}
