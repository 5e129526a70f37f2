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

// JobCreator defines the interface that the service must implement.
type JobCreator interface {
	CreateJob(ctx context.Context, userID uuid.UUID, params services.CreateJobParams) (*models.JobApplicationDB, error)
}

// CreateJobRequest represents the JSON body for creating an application
// swagger:model CreateJobRequest
type CreateJobRequest struct {
	// Job title
	// required: true
	// default: Software Engineer
	Title string `json:"title"`

	// Company name
	// required: true
	// default: Acme Corp
	Company string `json:"company"`

	// Posting URL
	URL *string `json:"url"`

	// Posting text
	Description *string `json:"description"`

	// Initial status, defaults to SAVED
	Status *string `json:"status"`

	// Where the record came from, defaults to MANUAL
	SourceType *string `json:"source_type"`

	// Free-form notes
	Notes *string `json:"notes"`
}

// NewCreateJobHandler returns an HTTP handler that records a job
// application for the authenticated user.
// @Summary Create a job application
// @Tags jobs
// @Accept json
// @Produce json
// @Param createJobRequest body handlers.CreateJobRequest true "Application to record"
// @Success 201 {object} models.JobApplicationDB "Application created"
// @Failure 400 {object} handlers.APIError "Invalid request body or status"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/jobs [post]
func NewCreateJobHandler(svc JobCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		var req CreateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" || req.Company == "" {
			writeError(w, r, http.StatusBadRequest, "Title and company are required")
			return
		}

		job, err := svc.CreateJob(r.Context(), identity.UserID, services.CreateJobParams{
			Title:       req.Title,
			Company:     req.Company,
			URL:         req.URL,
			Description: req.Description,
			Status:      req.Status,
			SourceType:  req.SourceType,
			Notes:       req.Notes,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidStatus) {
				writeError(w, r, http.StatusBadRequest, "Unknown application status")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, job)
	}
}
