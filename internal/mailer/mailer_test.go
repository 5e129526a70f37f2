package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_FromFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		username string
		from     string
		wantFrom string
	}{
		{
			name:     "explicit from wins",
			username: "smtp-user@example.com",
			from:     "noreply@example.com",
			wantFrom: "noreply@example.com",
		},
		{
			name:     "falls back to username",
			username: "smtp-user@example.com",
			wantFrom: "smtp-user@example.com",
		},
		{
			name:     "default when nothing configured",
			wantFrom: "noreply@autoapply.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("smtp.example.com", 587, tt.username, "pass", tt.from, "https://app.example.com")
			assert.Equal(t, tt.wantFrom, m.from)
		})
	}
}

func TestSendPasswordResetEmail_UnconfiguredSkipsSending(t *testing.T) {
	// No username means no SMTP account; sending is a logged no-op.
	m := New("", 0, "", "", "", "https://app.example.com")

	err := m.SendPasswordResetEmail("alice@example.com", "reset-token")
	assert.NoError(t, err)
}

func TestBuildPasswordResetBody(t *testing.T) {
	body := buildPasswordResetBody("https://app.example.com/reset-password?token=abc123")

	assert.Contains(t, body, "https://app.example.com/reset-password?token=abc123")
	assert.Contains(t, body, "expire in 1 hour")
	assert.Contains(t, body, "Reset Password")
}
