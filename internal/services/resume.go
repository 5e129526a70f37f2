package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

//go:generate mockgen -source=resume.go -destination=mocks_resume.go -package=services

// ResumeVersionStore defines persistence operations for resume versions.
type ResumeVersionStore interface {
	Create(ctx context.Context, rv *models.ResumeVersionDB) (*models.ResumeVersionDB, error)
	GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.ResumeVersionDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ResumeVersionDB, error)
}

// TailoredResume is the advisory output of resume tailoring.
type TailoredResume struct {
	TailoredResume string `json:"tailored_resume"`
	ATSScore       int    `json:"ats_score"`
	ATSFeedback    string `json:"ats_feedback"`
	Improvements   string `json:"improvements"`
}

// CreateResumeVersionParams carries a version-create request.
type CreateResumeVersionParams struct {
	JobApplicationID *uuid.UUID
	ResumeContent    string
	ATSScore         *int
	ATSFeedback      *string
}

// ResumeService handles resume tailoring and the append-only version
// store. Tailoring is a placeholder returning static mock values.
type ResumeService struct {
	store ResumeVersionStore
}

// NewResumeService creates a new ResumeService.
func NewResumeService(store ResumeVersionStore) *ResumeService {
	return &ResumeService{store: store}
}

// TailorResume rewrites a resume against a job description.
// TODO: integrate a language model; today this returns canned output so
// the extension and frontend have a stable contract to build against.
func (s *ResumeService) TailorResume(ctx context.Context, userID uuid.UUID, jobDescription string) *TailoredResume {
	logger.Log.Infow("tailoring resume", "userID", userID, "description_len", len(jobDescription))

	return &TailoredResume{
		TailoredResume: "Tailored resume content will be generated here...",
		ATSScore:       85,
		ATSFeedback:    "Resume is well-optimized for ATS systems.",
		Improvements:   "Consider adding more keywords from the job description.",
	}
}

// CreateResumeVersion appends a new version for the caller.
func (s *ResumeService) CreateResumeVersion(ctx context.Context, userID uuid.UUID, params CreateResumeVersionParams) (*models.ResumeVersionDB, error) {
	rv := &models.ResumeVersionDB{
		UserID:           userID,
		JobApplicationID: params.JobApplicationID,
		ResumeContent:    params.ResumeContent,
		ATSScore:         params.ATSScore,
		ATSFeedback:      params.ATSFeedback,
	}

	created, err := s.store.Create(ctx, rv)
	if err != nil {
		logger.Log.Errorw("failed to create resume version", "userID", userID, "error", err)
		return nil, err
	}

	return created, nil
}

// GetResumeVersion returns one version scoped by owner.
func (s *ResumeService) GetResumeVersion(ctx context.Context, id, userID uuid.UUID) (*models.ResumeVersionDB, error) {
	rv, err := s.store.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to get resume version", "id", id, "userID", userID, "error", err)
		return nil, err
	}
	if rv == nil {
		return nil, ErrNotFound
	}
	return rv, nil
}

// GetUserResumeVersions returns the caller's versions, newest first.
func (s *ResumeService) GetUserResumeVersions(ctx context.Context, userID uuid.UUID) ([]models.ResumeVersionDB, error) {
	versions, err := s.store.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list resume versions", "userID", userID, "error", err)
		return nil, err
	}
	return versions, nil
}
