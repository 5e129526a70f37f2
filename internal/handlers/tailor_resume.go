package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/services"
)

// ResumeTailorer defines the interface that the service must implement.
type ResumeTailorer interface {
	TailorResume(ctx context.Context, userID uuid.UUID, jobDescription string) *services.TailoredResume
}

// TailorResumeRequest represents the JSON body for resume tailoring
// swagger:model TailorResumeRequest
type TailorResumeRequest struct {
	// Target job description
	// required: true
	JobDescription string `json:"job_description"`
}

// NewTailorResumeHandler returns an HTTP handler that rewrites a resume
// for a job description. The result is advisory; persisting it is a
// separate call to the resume-versions endpoint.
// @Summary Tailor a resume
// @Tags resumes
// @Accept json
// @Produce json
// @Param tailorResumeRequest body handlers.TailorResumeRequest true "Tailoring request"
// @Success 200 {object} services.TailoredResume "Tailored output"
// @Failure 400 {object} handlers.APIError "Invalid request body"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Security BearerAuth
// @Router /api/resumes/tailor [post]
func NewTailorResumeHandler(svc ResumeTailorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "Missing authentication")
			return
		}

		var req TailorResumeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.JobDescription == "" {
			writeError(w, r, http.StatusBadRequest, "Job description is required")
			return
		}

		writeJSON(w, http.StatusOK, svc.TailorResume(r.Context(), identity.UserID, req.JobDescription))
	}
}
