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

const jobColumns = `job_id, user_id, title, company, url, description, status, source_type, applied_at, notes, created_at, updated_at`

type JobApplicationRepository struct {
	db *sqlx.DB
}

func NewJobApplicationRepository(db *sqlx.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

// Create inserts a new application and returns the stored row.
func (r *JobApplicationRepository) Create(ctx context.Context, job *models.JobApplicationDB) (*models.JobApplicationDB, error) {
	const query = `
		INSERT INTO job_applications (user_id, title, company, url, description, status, source_type, applied_at, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + jobColumns

	var row models.JobApplicationDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query,
		job.UserID, job.Title, job.Company, job.URL, job.Description,
		job.Status, job.SourceType, job.AppliedAt, job.Notes,
	)

	logger.Log.Infow("job insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{job.UserID, job.Title, job.Company, job.Status, job.SourceType},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &row, nil
}

// GetByIDAndUserID returns the application owned by userID, or nil when
// the (id, user) pair does not match any row.
func (r *JobApplicationRepository) GetByIDAndUserID(ctx context.Context, jobID, userID uuid.UUID) (*models.JobApplicationDB, error) {
	const query = `
		SELECT ` + jobColumns + `
		FROM job_applications
		WHERE job_id = $1 AND user_id = $2
	`

	var row models.JobApplicationDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query, jobID, userID)

	logger.Log.Infow("job read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{jobID, userID},
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

// ListByUserID returns every application of a user, newest first.
func (r *JobApplicationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.JobApplicationDB, error) {
	const query = `
		SELECT ` + jobColumns + `
		FROM job_applications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var rows []models.JobApplicationDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, userID)

	logger.Log.Infow("job list",
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

// ListByUserIDAndStatus returns a user's applications in one status.
func (r *JobApplicationRepository) ListByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status string) ([]models.JobApplicationDB, error) {
	const query = `
		SELECT ` + jobColumns + `
		FROM job_applications
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC
	`

	var rows []models.JobApplicationDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, userID, status)

	logger.Log.Infow("job list by status",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, status},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Update stores the full patched row, still scoped by owner, and
// returns the stored state.
func (r *JobApplicationRepository) Update(ctx context.Context, job *models.JobApplicationDB) (*models.JobApplicationDB, error) {
	const query = `
		UPDATE job_applications
		SET title = $3, company = $4, url = $5, description = $6,
		    status = $7, source_type = $8, applied_at = $9, notes = $10,
		    updated_at = NOW()
		WHERE job_id = $1 AND user_id = $2
		RETURNING ` + jobColumns

	var row models.JobApplicationDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query,
		job.JobID, job.UserID, job.Title, job.Company, job.URL,
		job.Description, job.Status, job.SourceType, job.AppliedAt, job.Notes,
	)

	logger.Log.Infow("job update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{job.JobID, job.UserID, job.Status},
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

// Delete removes an application scoped by owner and reports whether a
// row was actually deleted.
func (r *JobApplicationRepository) Delete(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	const query = `DELETE FROM job_applications WHERE job_id = $1 AND user_id = $2`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, jobID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("job delete",
		"query", query,
		"args", []any{jobID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// CountByStatus groups a user's applications by status.
func (r *JobApplicationRepository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	const query = `
		SELECT status, COUNT(*) AS total
		FROM job_applications
		WHERE user_id = $1
		GROUP BY status
	`

	var rows []struct {
		Status string `db:"status"`
		Total  int64  `db:"total"`
	}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, userID)

	logger.Log.Infow("job status counts",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}

	return counts, nil
}
