package models

import (
	"time"

	"github.com/google/uuid"
)

// ResumeVersionDB is an append-only tailored resume snapshot. There is
// no update path; new tailoring always produces a new version.
type ResumeVersionDB struct {
	ResumeVersionID  uuid.UUID  `json:"id" db:"resume_version_id"`
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`
	JobApplicationID *uuid.UUID `json:"job_application_id,omitempty" db:"job_application_id"`
	ResumeContent    string     `json:"resume_content" db:"resume_content"`
	ATSScore         *int       `json:"ats_score,omitempty" db:"ats_score"`
	ATSFeedback      *string    `json:"ats_feedback,omitempty" db:"ats_feedback"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}
