package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/models"
)

// PageAnalyzer defines the interface that the service must implement.
type PageAnalyzer interface {
	AnalyzePage(ctx context.Context, userID uuid.UUID, req models.PageAnalysisRequest) (*models.AutomationPlan, error)
}

// NewAnalyzePageHandler returns an HTTP handler that builds a form fill
// plan from a page captured by the browser extension. The plan is
// advisory and never persisted.
// @Summary Analyze a captured page
// @Tags automation
// @Accept json
// @Produce json
// @Param pageAnalysisRequest body models.PageAnalysisRequest true "Captured page structure"
// @Success 200 {object} models.AutomationPlan "Fill plan"
// @Failure 400 {object} handlers.APIError "Invalid request body"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/automation/analyze [post]
func NewAnalyzePageHandler(svc PageAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		var req models.PageAnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.PageURL == "" {
			writeError(w, r, http.StatusBadRequest, "Page URL is required")
			return
		}

		plan, err := svc.AnalyzePage(r.Context(), identity.UserID, req)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, plan)
	}
}
