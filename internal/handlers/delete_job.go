package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/services"
)

// JobDeleter defines the interface that the service must implement.
type JobDeleter interface {
	DeleteJob(ctx context.Context, jobID, userID uuid.UUID) error
}

// NewDeleteJobHandler returns an HTTP handler that deletes one of the
// authenticated user's applications.
// @Summary Delete a job application
// @Tags jobs
// @Param id path string true "Application ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Failure 404 {object} handlers.APIError "Application not found"
// @Security BearerAuth
// @Router /api/jobs/{id} [delete]
func NewDeleteJobHandler(svc JobDeleter) http.HandlerFunc {
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

		if err := svc.DeleteJob(r.Context(), jobID, identity.UserID); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, r, http.StatusNotFound, "Application not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
