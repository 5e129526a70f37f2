package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

//go:generate mockgen -source=job.go -destination=mocks_job.go -package=services

// JobStore defines persistence operations for job applications.
type JobStore interface {
	Create(ctx context.Context, job *models.JobApplicationDB) (*models.JobApplicationDB, error)
	GetByIDAndUserID(ctx context.Context, jobID, userID uuid.UUID) (*models.JobApplicationDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.JobApplicationDB, error)
	ListByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status string) ([]models.JobApplicationDB, error)
	Update(ctx context.Context, job *models.JobApplicationDB) (*models.JobApplicationDB, error)
	Delete(ctx context.Context, jobID, userID uuid.UUID) (bool, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

// StatsCache caches dashboard aggregates.
type StatsCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error)
	Set(ctx context.Context, userID uuid.UUID, stats *models.DashboardStats) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CreateJobParams carries the fields of a job-create request.
type CreateJobParams struct {
	Title       string
	Company     string
	URL         *string
	Description *string
	Status      *string
	SourceType  *string
	Notes       *string
}

// UpdateJobParams is a field-level patch: nil means leave unchanged.
type UpdateJobParams struct {
	Title       *string
	Company     *string
	URL         *string
	Description *string
	Status      *string
	SourceType  *string
	Notes       *string
}

// JobService handles application CRUD, dashboard aggregation and
// status-change event publishing.
type JobService struct {
	store       JobStore
	cache       StatsCache
	kafkaWriter KafkaWriter
}

// NewJobService creates a new JobService.
func NewJobService(store JobStore, cache StatsCache, kafkaWriter KafkaWriter) *JobService {
	return &JobService{
		store:       store,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// CreateJob stores a new application. Status defaults to SAVED and
// source to MANUAL; creating directly as APPLIED stamps applied_at.
func (s *JobService) CreateJob(ctx context.Context, userID uuid.UUID, params CreateJobParams) (*models.JobApplicationDB, error) {
	status := models.StatusSaved
	if params.Status != nil {
		if !models.ValidStatus(*params.Status) {
			return nil, ErrInvalidStatus
		}
		status = *params.Status
	}

	sourceType := models.SourceManual
	if params.SourceType != nil {
		sourceType = *params.SourceType
	}

	job := &models.JobApplicationDB{
		UserID:      userID,
		Title:       params.Title,
		Company:     params.Company,
		URL:         params.URL,
		Description: params.Description,
		Status:      status,
		SourceType:  sourceType,
		Notes:       params.Notes,
	}
	if status == models.StatusApplied {
		now := time.Now()
		job.AppliedAt = &now
	}

	created, err := s.store.Create(ctx, job)
	if err != nil {
		logger.Log.Errorw("failed to create job", "userID", userID, "error", err)
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	s.publishStatusEvent(ctx, created, "create")

	return created, nil
}

// GetUserJobs returns every application of the caller, newest first.
func (s *JobService) GetUserJobs(ctx context.Context, userID uuid.UUID) ([]models.JobApplicationDB, error) {
	jobs, err := s.store.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list jobs", "userID", userID, "error", err)
		return nil, err
	}
	return jobs, nil
}

// GetJobsByStatus returns the caller's applications in one status.
func (s *JobService) GetJobsByStatus(ctx context.Context, userID uuid.UUID, status string) ([]models.JobApplicationDB, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	jobs, err := s.store.ListByUserIDAndStatus(ctx, userID, status)
	if err != nil {
		logger.Log.Errorw("failed to list jobs by status", "userID", userID, "status", status, "error", err)
		return nil, err
	}
	return jobs, nil
}

// GetJob returns one application scoped by owner. A row owned by a
// different user reports ErrNotFound, never a permission error.
func (s *JobService) GetJob(ctx context.Context, jobID, userID uuid.UUID) (*models.JobApplicationDB, error) {
	job, err := s.store.GetByIDAndUserID(ctx, jobID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get job", "jobID", jobID, "userID", userID, "error", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

// UpdateJob applies a partial patch: every non-nil field overwrites the
// stored value, nil fields are kept. The first transition to APPLIED
// stamps applied_at; repeated APPLIED updates leave it untouched.
func (s *JobService) UpdateJob(ctx context.Context, jobID, userID uuid.UUID, params UpdateJobParams) (*models.JobApplicationDB, error) {
	job, err := s.store.GetByIDAndUserID(ctx, jobID, userID)
	if err != nil {
		logger.Log.Errorw("failed to load job for update", "jobID", jobID, "userID", userID, "error", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}

	statusChanged := false

	if params.Title != nil {
		job.Title = *params.Title
	}
	if params.Company != nil {
		job.Company = *params.Company
	}
	if params.URL != nil {
		job.URL = params.URL
	}
	if params.Description != nil {
		job.Description = params.Description
	}
	if params.Notes != nil {
		job.Notes = params.Notes
	}
	if params.SourceType != nil {
		job.SourceType = *params.SourceType
	}
	if params.Status != nil {
		if !models.ValidStatus(*params.Status) {
			return nil, ErrInvalidStatus
		}
		statusChanged = job.Status != *params.Status
		job.Status = *params.Status
		if job.Status == models.StatusApplied && job.AppliedAt == nil {
			now := time.Now()
			job.AppliedAt = &now
		}
	}

	updated, err := s.store.Update(ctx, job)
	if err != nil {
		logger.Log.Errorw("failed to update job", "jobID", jobID, "userID", userID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	s.invalidateStats(ctx, userID)
	if statusChanged {
		s.publishStatusEvent(ctx, updated, "update")
	}

	return updated, nil
}

// DeleteJob removes an application scoped by owner.
func (s *JobService) DeleteJob(ctx context.Context, jobID, userID uuid.UUID) error {
	deleted, err := s.store.Delete(ctx, jobID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete job", "jobID", jobID, "userID", userID, "error", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.invalidateStats(ctx, userID)

	return nil
}

// GetDashboardStats aggregates the caller's applications into coarse
// totals, with a cache-aside read of the stats cache.
func (s *JobService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error) {
	if s.cache != nil {
		if stats, err := s.cache.Get(ctx, userID); err == nil {
			return stats, nil
		}
	}

	counts, err := s.store.CountByStatus(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count jobs by status", "userID", userID, "error", err)
		return nil, err
	}

	stats := bucketStats(counts)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, stats); err != nil {
			logger.Log.Errorw("failed to cache dashboard stats", "userID", userID, "error", err)
		}
	}

	return stats, nil
}

// bucketStats folds per-status counts into dashboard totals:
// totalApplied counts every non-SAVED row, totalInterviews covers the
// three interview-pipeline statuses.
func bucketStats(counts map[string]int64) *models.DashboardStats {
	stats := &models.DashboardStats{
		StatusBreakdown: make(map[string]int64, len(counts)),
	}

	for status, n := range counts {
		stats.StatusBreakdown[status] = n
		if status != models.StatusSaved {
			stats.TotalApplied += n
		}
	}

	stats.TotalInterviews = counts[models.StatusScreening] +
		counts[models.StatusInterview] +
		counts[models.StatusInterviewDone]
	stats.TotalOffers = counts[models.StatusOffer]
	stats.TotalRejected = counts[models.StatusRejected]

	return stats
}

func (s *JobService) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate stats cache", "userID", userID, "error", err)
	}
}

// publishStatusEvent publishes a status-change event to Kafka.
func (s *JobService) publishStatusEvent(ctx context.Context, job *models.JobApplicationDB, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "job_id", job.JobID)
		return
	}

	event := models.JobStatusEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    job.UserID.String(),
		JobID:     job.JobID.String(),
		Status:    job.Status,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal status event", "job_id", job.JobID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.JobID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish status event", "job_id", job.JobID, "error", err)
	} else {
		logger.Log.Infow("status event published", "job_id", job.JobID, "status", job.Status)
	}
}
