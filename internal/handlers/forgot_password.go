package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/services"
)

// ForgotPassworder defines the interface that the service must implement.
type ForgotPassworder interface {
	ForgotPassword(ctx context.Context, email string) error
}

// ForgotPasswordRequest represents the JSON body for a reset request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// ForgotPasswordResponse is the generic acknowledgement. The body is
// identical whether or not the email has an account.
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	Message string `json:"message"`
}

// NewForgotPasswordHandler returns an HTTP handler that starts the
// password reset flow.
// @Summary Request a password reset
// @Description Sends a reset link if the email has an account. The response never reveals whether the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Reset request"
// @Success 200 {object} handlers.ForgotPasswordResponse "Acknowledged"
// @Failure 400 {object} handlers.APIError "Invalid request body"
// @Failure 502 {object} handlers.APIError "Mail delivery failed"
// @Router /api/auth/forgot-password [post]
func NewForgotPasswordHandler(svc ForgotPassworder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Email == "" {
			writeError(w, r, http.StatusBadRequest, "Email is required")
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			if errors.Is(err, services.ErrMailSend) {
				writeError(w, r, http.StatusBadGateway, "Failed to send reset email")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ForgotPasswordResponse{
			Message: "If the email exists, a reset link has been sent",
		})
	}
}
