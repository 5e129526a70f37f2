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

// JobLister defines the interface that the service must implement.
type JobLister interface {
	GetUserJobs(ctx context.Context, userID uuid.UUID) ([]models.JobApplicationDB, error)
	GetJobsByStatus(ctx context.Context, userID uuid.UUID, status string) ([]models.JobApplicationDB, error)
}

// NewGetJobsHandler returns an HTTP handler that lists the
// authenticated user's applications, newest first.
// @Summary List job applications
// @Tags jobs
// @Produce json
// @Success 200 {array} models.JobApplicationDB "Applications"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/jobs [get]
func NewGetJobsHandler(svc JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		jobs, err := svc.GetUserJobs(r.Context(), identity.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, jobs)
	}
}

// NewGetJobsByStatusHandler returns an HTTP handler that lists the
// authenticated user's applications in one status.
// @Summary List job applications by status
// @Tags jobs
// @Produce json
// @Param status path string true "Application status" Enums(SAVED, APPLIED, SCREENING, INTERVIEW, INTERVIEW_DONE, OFFER, REJECTED, ACCEPTED, WITHDRAWN)
// @Success 200 {array} models.JobApplicationDB "Applications"
// @Failure 400 {object} handlers.APIError "Unknown status"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/jobs/status/{status} [get]
func NewGetJobsByStatusHandler(svc JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		jobs, err := svc.GetJobsByStatus(r.Context(), identity.UserID, chi.URLParam(r, "status"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidStatus) {
				writeError(w, r, http.StatusBadRequest, "Unknown application status")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, jobs)
	}
}
