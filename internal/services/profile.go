package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

//go:generate mockgen -source=profile.go -destination=mocks_profile.go -package=services

// ProfileStore defines persistence operations for profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
	Upsert(ctx context.Context, profile *models.ProfileDB, replaceExperiences, replaceEducation, replaceSkills bool) (*models.ProfileDB, error)
}

// ProfileParams carries a profile update. Scalar fields are applied
// unconditionally, including nils. A nil child list preserves the
// stored collection; a non-nil list (even empty) replaces it wholesale.
type ProfileParams struct {
	FullName     *string
	Phone        *string
	Location     *string
	LinkedinURL  *string
	PortfolioURL *string
	Summary      *string
	Experiences  *[]models.ExperienceDB
	Education    *[]models.EducationDB
	Skills       *[]models.SkillDB
}

// ProfileService handles the per-user structured profile.
type ProfileService struct {
	store ProfileStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// CreateOrUpdateProfile upserts the caller's profile.
func (s *ProfileService) CreateOrUpdateProfile(ctx context.Context, userID uuid.UUID, params ProfileParams) (*models.ProfileDB, error) {
	profile := &models.ProfileDB{
		UserID:       userID,
		FullName:     params.FullName,
		Phone:        params.Phone,
		Location:     params.Location,
		LinkedinURL:  params.LinkedinURL,
		PortfolioURL: params.PortfolioURL,
		Summary:      params.Summary,
	}

	if params.Experiences != nil {
		profile.Experiences = *params.Experiences
	}
	if params.Education != nil {
		profile.Education = *params.Education
	}
	if params.Skills != nil {
		profile.Skills = *params.Skills
	}

	updated, err := s.store.Upsert(ctx, profile,
		params.Experiences != nil,
		params.Education != nil,
		params.Skills != nil,
	)
	if err != nil {
		logger.Log.Errorw("failed to upsert profile", "userID", userID, "error", err)
		return nil, err
	}

	return updated, nil
}

// GetProfile returns the caller's profile or ErrNotFound.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	profile, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "error", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}
