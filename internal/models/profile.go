package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDB represents a user's structured profile. Child collections
// are exclusively owned by the profile and replaced wholesale on update.
type ProfileDB struct {
	ProfileID    uuid.UUID `json:"id" db:"profile_id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	FullName     *string   `json:"full_name" db:"full_name"`
	Phone        *string   `json:"phone" db:"phone"`
	Location     *string   `json:"location" db:"location"`
	LinkedinURL  *string   `json:"linkedin_url" db:"linkedin_url"`
	PortfolioURL *string   `json:"portfolio_url" db:"portfolio_url"`
	Summary      *string   `json:"summary" db:"summary"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	Experiences []ExperienceDB `json:"experiences" db:"-"`
	Education   []EducationDB  `json:"education" db:"-"`
	Skills      []SkillDB      `json:"skills" db:"-"`
}

// ExperienceDB is a single work-experience row owned by a profile.
type ExperienceDB struct {
	ExperienceID uuid.UUID `json:"id" db:"experience_id"`
	ProfileID    uuid.UUID `json:"-" db:"profile_id"`
	Company      string    `json:"company" db:"company"`
	Position     string    `json:"position" db:"position"`
	Description  *string   `json:"description" db:"description"`
	StartDate    *string   `json:"start_date" db:"start_date"`
	EndDate      *string   `json:"end_date" db:"end_date"`
	IsCurrent    bool      `json:"is_current" db:"is_current"`
	Location     *string   `json:"location" db:"location"`
}

// EducationDB is a single education row owned by a profile.
type EducationDB struct {
	EducationID  uuid.UUID `json:"id" db:"education_id"`
	ProfileID    uuid.UUID `json:"-" db:"profile_id"`
	Institution  string    `json:"institution" db:"institution"`
	Degree       *string   `json:"degree" db:"degree"`
	FieldOfStudy *string   `json:"field_of_study" db:"field_of_study"`
	StartDate    *string   `json:"start_date" db:"start_date"`
	EndDate      *string   `json:"end_date" db:"end_date"`
	GPA          *string   `json:"gpa" db:"gpa"`
}

// SkillDB is a single skill row owned by a profile.
type SkillDB struct {
	SkillID          uuid.UUID `json:"id" db:"skill_id"`
	ProfileID        uuid.UUID `json:"-" db:"profile_id"`
	Name             string    `json:"name" db:"name"`
	Category         *string   `json:"category" db:"category"`
	ProficiencyLevel *string   `json:"proficiency_level" db:"proficiency_level"`
}
