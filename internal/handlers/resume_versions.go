package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/models"
	"github.com/autoapply/unified-service/internal/services"
)

// ResumeVersioner defines the interface that the service must implement.
type ResumeVersioner interface {
	CreateResumeVersion(ctx context.Context, userID uuid.UUID, params services.CreateResumeVersionParams) (*models.ResumeVersionDB, error)
	GetResumeVersion(ctx context.Context, id, userID uuid.UUID) (*models.ResumeVersionDB, error)
	GetUserResumeVersions(ctx context.Context, userID uuid.UUID) ([]models.ResumeVersionDB, error)
}

// CreateResumeVersionRequest represents the JSON body for saving a
// resume version
// swagger:model CreateResumeVersionRequest
type CreateResumeVersionRequest struct {
	// Application this version was made for, if any
	JobApplicationID *uuid.UUID `json:"job_application_id"`

	// Full resume text
	// required: true
	ResumeContent string `json:"resume_content"`

	// ATS score attached to this version
	ATSScore *int `json:"ats_score"`

	// ATS feedback attached to this version
	ATSFeedback *string `json:"ats_feedback"`
}

// NewCreateResumeVersionHandler returns an HTTP handler that appends a
// resume version for the authenticated user. Versions are never
// updated in place.
// @Summary Save a resume version
// @Tags resumes
// @Accept json
// @Produce json
// @Param createResumeVersionRequest body handlers.CreateResumeVersionRequest true "Version to save"
// @Success 201 {object} models.ResumeVersionDB "Saved version"
// @Failure 400 {object} handlers.APIError "Invalid request body"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/resume-versions [post]
func NewCreateResumeVersionHandler(svc ResumeVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		var req CreateResumeVersionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.ResumeContent == "" {
			writeError(w, r, http.StatusBadRequest, "Resume content is required")
			return
		}

		version, err := svc.CreateResumeVersion(r.Context(), identity.UserID, services.CreateResumeVersionParams{
			JobApplicationID: req.JobApplicationID,
			ResumeContent:    req.ResumeContent,
			ATSScore:         req.ATSScore,
			ATSFeedback:      req.ATSFeedback,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, version)
	}
}

// NewGetResumeVersionsHandler returns an HTTP handler that lists the
// authenticated user's resume versions, newest first.
// @Summary List resume versions
// @Tags resumes
// @Produce json
// @Success 200 {array} models.ResumeVersionDB "Versions"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/resume-versions [get]
func NewGetResumeVersionsHandler(svc ResumeVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		versions, err := svc.GetUserResumeVersions(r.Context(), identity.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, versions)
	}
}

// NewGetResumeVersionHandler returns an HTTP handler that fetches one
// of the authenticated user's resume versions.
// @Summary Get a resume version
// @Tags resumes
// @Produce json
// @Param id path string true "Version ID"
// @Success 200 {object} models.ResumeVersionDB "Version"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Failure 404 {object} handlers.APIError "Version not found"
// @Security BearerAuth
// @Router /api/resume-versions/{id} [get]
func NewGetResumeVersionHandler(svc ResumeVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid version id")
			return
		}

		version, err := svc.GetResumeVersion(r.Context(), id, identity.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, r, http.StatusNotFound, "Resume version not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, version)
	}
}
