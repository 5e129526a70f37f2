package models

import (
	"time"

	"github.com/google/uuid"
)

// Job application statuses.
const (
	StatusSaved         = "SAVED"
	StatusApplied       = "APPLIED"
	StatusScreening     = "SCREENING"
	StatusInterview     = "INTERVIEW"
	StatusInterviewDone = "INTERVIEW_DONE"
	StatusOffer         = "OFFER"
	StatusRejected      = "REJECTED"
	StatusWithdrawn     = "WITHDRAWN"
)

// Job application sources.
const (
	SourceManual    = "MANUAL"
	SourceExtension = "EXTENSION"
	SourceEmail     = "EMAIL"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusSaved, StatusApplied, StatusScreening, StatusInterview,
		StatusInterviewDone, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// JobApplicationDB represents a tracked job application in the database.
// AppliedAt is stamped the first time the status becomes APPLIED and is
// never overwritten afterwards.
type JobApplicationDB struct {
	JobID       uuid.UUID  `json:"id" db:"job_id"`                 // Primary key
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`           // Owning user
	Title       string     `json:"title" db:"title"`               // Job title
	Company     string     `json:"company" db:"company"`           // Company name
	URL         *string    `json:"url,omitempty" db:"url"`         // Posting URL
	Description *string    `json:"description,omitempty" db:"description"` // Posting text
	Status      string     `json:"status" db:"status"`             // Application status
	SourceType  string     `json:"source_type" db:"source_type"`   // MANUAL, EXTENSION, EMAIL
	AppliedAt   *time.Time `json:"applied_at,omitempty" db:"applied_at"` // First APPLIED transition
	Notes       *string    `json:"notes,omitempty" db:"notes"`     // Free-form notes
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// JobStatusEvent is published to Kafka when an application changes status.
type JobStatusEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix seconds when the change happened
	UserID    string `json:"user_id"`   // Owning user
	JobID     string `json:"job_id"`    // Application identifier
	Status    string `json:"status"`    // New status
	Operation string `json:"operation"` // "create", "update" or "delete"
}
