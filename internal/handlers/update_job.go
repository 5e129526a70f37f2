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

// JobUpdater defines the interface that the service must implement.
type JobUpdater interface {
	UpdateJob(ctx context.Context, jobID, userID uuid.UUID, params services.UpdateJobParams) (*models.JobApplicationDB, error)
}

// UpdateJobRequest is a field-level patch. Omitted fields keep their
// stored values.
// swagger:model UpdateJobRequest
type UpdateJobRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	SourceType  *string `json:"source_type"`
	Notes       *string `json:"notes"`
}

// NewUpdateJobHandler returns an HTTP handler that patches one of the
// authenticated user's applications.
// @Summary Update a job application
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param updateJobRequest body handlers.UpdateJobRequest true "Fields to change"
// @Success 200 {object} models.JobApplicationDB "Updated application"
// @Failure 400 {object} handlers.APIError "Invalid request body or status"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Failure 404 {object} handlers.APIError "Application not found"
// @Security BearerAuth
// @Router /api/jobs/{id} [put]
func NewUpdateJobHandler(svc JobUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		jobID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid application id")
			return
		}

		var req UpdateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		job, err := svc.UpdateJob(r.Context(), jobID, identity.UserID, services.UpdateJobParams{
			Title:       req.Title,
			Company:     req.Company,
			URL:         req.URL,
			Description: req.Description,
			Status:      req.Status,
			SourceType:  req.SourceType,
			Notes:       req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, r, http.StatusNotFound, "Application not found")
			case errors.Is(err, services.ErrInvalidStatus):
				writeError(w, r, http.StatusBadRequest, "Unknown application status")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, r, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, job)
	}
}
