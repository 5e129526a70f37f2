package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByUserID loads a profile and its child collections, or returns nil
// when the user has no profile yet.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT profile_id, user_id, full_name, phone, location, linkedin_url, portfolio_url, summary, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	e := ext(ctx, r.db)

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, e, &profile, query, userID)

	logger.Log.Infow("profile read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := sqlx.SelectContext(ctx, e, &profile.Experiences, `
		SELECT experience_id, profile_id, company, position, description, start_date, end_date, is_current, location
		FROM experiences WHERE profile_id = $1 ORDER BY start_date DESC NULLS LAST`, profile.ProfileID); err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, e, &profile.Education, `
		SELECT education_id, profile_id, institution, degree, field_of_study, start_date, end_date, gpa
		FROM education WHERE profile_id = $1 ORDER BY start_date DESC NULLS LAST`, profile.ProfileID); err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, e, &profile.Skills, `
		SELECT skill_id, profile_id, name, category, proficiency_level
		FROM skills WHERE profile_id = $1 ORDER BY name`, profile.ProfileID); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Upsert writes the scalar profile fields unconditionally and replaces
// each child collection for which the corresponding flag is set. It
// relies on the ambient request transaction for atomicity.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.ProfileDB, replaceExperiences, replaceEducation, replaceSkills bool) (*models.ProfileDB, error) {
	const query = `
		INSERT INTO profiles (user_id, full_name, phone, location, linkedin_url, portfolio_url, summary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    phone = EXCLUDED.phone,
		    location = EXCLUDED.location,
		    linkedin_url = EXCLUDED.linkedin_url,
		    portfolio_url = EXCLUDED.portfolio_url,
		    summary = EXCLUDED.summary,
		    updated_at = NOW()
		RETURNING profile_id
	`

	e := ext(ctx, r.db)

	var profileID uuid.UUID
	err := sqlx.GetContext(ctx, e, &profileID, query,
		profile.UserID, profile.FullName, profile.Phone, profile.Location,
		profile.LinkedinURL, profile.PortfolioURL, profile.Summary,
	)

	logger.Log.Infow("profile upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profile.UserID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	if replaceExperiences {
		if _, err := e.ExecContext(ctx, `DELETE FROM experiences WHERE profile_id = $1`, profileID); err != nil {
			return nil, err
		}
		for _, exp := range profile.Experiences {
			if _, err := e.ExecContext(ctx, `
				INSERT INTO experiences (profile_id, company, position, description, start_date, end_date, is_current, location)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				profileID, exp.Company, exp.Position, exp.Description,
				exp.StartDate, exp.EndDate, exp.IsCurrent, exp.Location,
			); err != nil {
				return nil, err
			}
		}
	}

	if replaceEducation {
		if _, err := e.ExecContext(ctx, `DELETE FROM education WHERE profile_id = $1`, profileID); err != nil {
			return nil, err
		}
		for _, edu := range profile.Education {
			if _, err := e.ExecContext(ctx, `
				INSERT INTO education (profile_id, institution, degree, field_of_study, start_date, end_date, gpa)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				profileID, edu.Institution, edu.Degree, edu.FieldOfStudy,
				edu.StartDate, edu.EndDate, edu.GPA,
			); err != nil {
				return nil, err
			}
		}
	}

	if replaceSkills {
		if _, err := e.ExecContext(ctx, `DELETE FROM skills WHERE profile_id = $1`, profileID); err != nil {
			return nil, err
		}
		for _, skill := range profile.Skills {
			if _, err := e.ExecContext(ctx, `
				INSERT INTO skills (profile_id, name, category, proficiency_level)
				VALUES ($1, $2, $3, $4)`,
				profileID, skill.Name, skill.Category, skill.ProficiencyLevel,
			); err != nil {
				return nil, err
			}
		}
	}

	return r.GetByUserID(ctx, profile.UserID)
}
