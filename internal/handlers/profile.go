package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/models"
	"github.com/autoapply/unified-service/internal/services"
)

// ProfileProvider defines the interface that the service must implement.
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
	CreateOrUpdateProfile(ctx context.Context, userID uuid.UUID, params services.ProfileParams) (*models.ProfileDB, error)
}

// UpdateProfileRequest represents the JSON body for a profile upsert.
// Scalar fields always overwrite; a present child list replaces the
// stored list wholesale, an omitted one is kept.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	FullName     *string                `json:"full_name"`
	Phone        *string                `json:"phone"`
	Location     *string                `json:"location"`
	LinkedinURL  *string                `json:"linkedin_url"`
	PortfolioURL *string                `json:"portfolio_url"`
	Summary      *string                `json:"summary"`
	Experiences  *[]models.ExperienceDB `json:"experiences"`
	Education    *[]models.EducationDB  `json:"education"`
	Skills       *[]models.SkillDB      `json:"skills"`
}

// NewGetProfileHandler returns an HTTP handler that fetches the
// authenticated user's profile.
// @Summary Get the profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileDB "Profile with children"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Failure 404 {object} handlers.APIError "No profile yet"
// @Security BearerAuth
// @Router /api/profile [get]
func NewGetProfileHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		profile, err := svc.GetProfile(r.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, r, http.StatusNotFound, "Profile not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler that creates or
// updates the authenticated user's profile.
// @Summary Create or update the profile
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.ProfileDB "Stored profile"
// @Failure 400 {object} handlers.APIError "Invalid request body"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/profile [put]
func NewUpdateProfileHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		profile, err := svc.CreateOrUpdateProfile(r.Context(), identity.UserID, services.ProfileParams{
			FullName:     req.FullName,
			Phone:        req.Phone,
			Location:     req.Location,
			LinkedinURL:  req.LinkedinURL,
			PortfolioURL: req.PortfolioURL,
			Summary:      req.Summary,
			Experiences:  req.Experiences,
			Education:    req.Education,
			Skills:       req.Skills,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
