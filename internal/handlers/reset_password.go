package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/services"
)

// ResetPassworder defines the interface that the service must implement.
type ResetPassworder interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for completing a reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// One-time reset token from the email link
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// ResetPasswordResponse confirms the password change
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler that completes the
// password reset flow.
// @Summary Reset a password
// @Description Consumes a one-time reset token and sets a new password. Expired, unknown and already-used tokens are rejected identically.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset completion request"
// @Success 200 {object} handlers.ResetPasswordResponse "Password updated"
// @Failure 400 {object} handlers.APIError "Invalid or expired token"
// @Router /api/auth/reset-password [post]
func NewResetPasswordHandler(svc ResetPassworder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Token == "" || req.NewPassword == "" {
			writeError(w, r, http.StatusBadRequest, "Token and new password are required")
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
			if errors.Is(err, services.ErrInvalidResetToken) {
				writeError(w, r, http.StatusBadRequest, "Invalid or expired reset token")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ResetPasswordResponse{
			Message: "Password has been reset successfully",
		})
	}
}
