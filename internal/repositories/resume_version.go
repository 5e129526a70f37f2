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

const resumeVersionColumns = `resume_version_id, user_id, job_application_id, resume_content, ats_score, ats_feedback, created_at`

type ResumeVersionRepository struct {
	db *sqlx.DB
}

func NewResumeVersionRepository(db *sqlx.DB) *ResumeVersionRepository {
	return &ResumeVersionRepository{db: db}
}

// Create appends a new resume version and returns the stored row.
// Versions are never updated.
func (r *ResumeVersionRepository) Create(ctx context.Context, rv *models.ResumeVersionDB) (*models.ResumeVersionDB, error) {
	const query = `
		INSERT INTO resume_versions (user_id, job_application_id, resume_content, ats_score, ats_feedback, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + resumeVersionColumns

	var row models.ResumeVersionDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query,
		rv.UserID, rv.JobApplicationID, rv.ResumeContent, rv.ATSScore, rv.ATSFeedback,
	)

	logger.Log.Infow("resume version insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rv.UserID, rv.JobApplicationID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &row, nil
}

// GetByIDAndUserID returns the version owned by userID, or nil when the
// (id, user) pair matches nothing.
func (r *ResumeVersionRepository) GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.ResumeVersionDB, error) {
	const query = `
		SELECT ` + resumeVersionColumns + `
		FROM resume_versions
		WHERE resume_version_id = $1 AND user_id = $2
	`

	var row models.ResumeVersionDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query, id, userID)

	logger.Log.Infow("resume version read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// ListByUserID returns a user's resume versions, newest first.
func (r *ResumeVersionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ResumeVersionDB, error) {
	const query = `
		SELECT ` + resumeVersionColumns + `
		FROM resume_versions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var rows []models.ResumeVersionDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, userID)

	logger.Log.Infow("resume version list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}
