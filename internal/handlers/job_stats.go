package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/models"
)

// StatsProvider defines the interface that the service must implement.
type StatsProvider interface {
	GetDashboardStats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error)
}

// NewJobStatsHandler returns an HTTP handler for dashboard aggregates
// over the authenticated user's applications.
// @Summary Get dashboard statistics
// @Tags jobs
// @Produce json
// @Success 200 {object} models.DashboardStats "Aggregates"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/jobs/stats [get]
func NewJobStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		stats, err := svc.GetDashboardStats(r.Context(), identity.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
