package services

import "errors"

// Error variables shared across the service layer. Handlers map these
// onto HTTP statuses.
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidStatus      = errors.New("invalid application status")
	ErrMailSend           = errors.New("failed to send email")
)
