package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

const (
	resetTokenLength = 32        // bytes of entropy per token
	resetTokenExpiry = time.Hour // issue-to-expiry window
)

//go:generate mockgen -source=password_reset.go -destination=mocks_password_reset.go -package=services

// ResetTokenStore defines the persistence operations of the reset flow.
type ResetTokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*models.PasswordResetTokenDB, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	MarkUsed(ctx context.Context, tokenID uuid.UUID) (bool, error)
}

// ResetMailSender hands a minted token to the mail collaborator.
type ResetMailSender interface {
	SendPasswordResetEmail(to, token string) error
}

// PasswordResetService drives the reset-token state machine:
// ISSUED -> CONSUMED or EXPIRED, both terminal.
type PasswordResetService struct {
	users  UserReader
	writer UserWriter
	tokens ResetTokenStore
	mail   ResetMailSender
}

// NewPasswordResetService creates a new PasswordResetService instance.
func NewPasswordResetService(users UserReader, writer UserWriter, tokens ResetTokenStore, mail ResetMailSender) *PasswordResetService {
	return &PasswordResetService{
		users:  users,
		writer: writer,
		tokens: tokens,
		mail:   mail,
	}
}

// ForgotPassword mints a one-time reset token and mails the reset link.
// An unknown email does nothing observable: callers always see success,
// so the endpoint cannot be used to enumerate accounts.
func (svc *PasswordResetService) ForgotPassword(ctx context.Context, email string) error {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up user for reset", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Infow("password reset for unknown email, ignoring")
		return nil
	}

	// At most one live token per user.
	if err := svc.tokens.DeleteByUserID(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to delete outstanding reset tokens", "err", err)
		return err
	}

	token, err := generateSecureToken()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return err
	}

	expiresAt := time.Now().Add(resetTokenExpiry)
	if err := svc.tokens.Save(ctx, token, user.UserID, expiresAt); err != nil {
		logger.Log.Errorw("failed to save reset token", "err", err)
		return err
	}

	if err := svc.mail.SendPasswordResetEmail(user.Email, token); err != nil {
		logger.Log.Errorw("failed to send reset email", "err", err)
		return ErrMailSend
	}

	return nil
}

// ResetPassword consumes a token and rotates the owner's password. A
// used or expired token fails; a valid one succeeds exactly once.
func (svc *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	row, err := svc.tokens.GetByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up reset token", "err", err)
		return err
	}
	if row == nil || !row.IsValid(time.Now()) {
		return ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash new password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, row.UserID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	consumed, err := svc.tokens.MarkUsed(ctx, row.TokenID)
	if err != nil {
		logger.Log.Errorw("failed to consume reset token", "err", err)
		return err
	}
	if !consumed {
		// Raced with another reset using the same token.
		return ErrInvalidResetToken
	}

	logger.Log.Infow("password reset completed", "user_id", row.UserID)
	return nil
}

// generateSecureToken returns a URL-safe token with resetTokenLength
// bytes of entropy.
func generateSecureToken() (string, error) {
	buf := make([]byte, resetTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
