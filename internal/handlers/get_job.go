package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/models"
	"github.com/autoapply/unified-service/internal/services"
)

// JobGetter defines the interface that the service must implement.
type JobGetter interface {
	GetJob(ctx context.Context, jobID, userID uuid.UUID) (*models.JobApplicationDB, error)
}

// NewGetJobHandler returns an HTTP handler that fetches one of the
// authenticated user's applications. Another user's application looks
// the same as a missing one.
// @Summary Get a job application
// @Tags jobs
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.JobApplicationDB "Application"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Failure 404 {object} handlers.APIError "Application not found"
// @Security BearerAuth
// @Router /api/jobs/{id} [get]
func NewGetJobHandler(svc JobGetter) http.HandlerFunc {
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

		job, err := svc.GetJob(r.Context(), jobID, identity.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, r, http.StatusNotFound, "Application not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, job)
	}
}
