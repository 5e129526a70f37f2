package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/autoapply/unified-service/internal/logger"
)

// Mailer sends transactional email over SMTP. When no username is
// configured it logs the reset link and skips sending, so local
// development works without an SMTP account.
type Mailer struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	frontendURL string
}

// New creates a Mailer. An empty username means mail is unconfigured.
func New(host string, port int, username, password, from, frontendURL string) *Mailer {
	if from == "" {
		from = username
	}
	if from == "" {
		from = "noreply@autoapply.com"
	}
	return &Mailer{
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		from:        from,
		frontendURL: frontendURL,
	}
}

// SendPasswordResetEmail mails the reset link for the given token.
func (m *Mailer) SendPasswordResetEmail(to, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)

	logger.Log.Infow("password reset requested", "to", to)

	if m.username == "" {
		logger.Log.Warnw("email sending not configured, skipping",
			"to", to,
			"reset_url", resetURL,
		)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Request - AutoApply")
	msg.SetBody("text/html", buildPasswordResetBody(resetURL))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		logger.Log.Errorw("failed to send password reset email", "to", to, "error", err)
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	logger.Log.Infow("password reset email sent", "to", to)
	return nil
}

func buildPasswordResetBody(resetURL string) string {
	return `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2>Password Reset Request</h2>
<p>You have requested to reset your password for your AutoApply account.</p>
<p>Click the button below to reset your password:</p>
<a href="` + resetURL + `" style="display: inline-block; padding: 12px 24px; background-color: #2563eb; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0;">Reset Password</a>
<p>Or copy and paste this link into your browser:</p>
<p style="word-break: break-all; color: #2563eb;">` + resetURL + `</p>
<p><strong>This link will expire in 1 hour.</strong></p>
<p>If you did not request a password reset, please ignore this email.</p>
<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666;">
<p>This is an automated message from AutoApply. Please do not reply to this email.</p>
</div>
</div>
</body>
</html>`
}
