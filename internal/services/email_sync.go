package services

import (
	"github.com/autoapply/unified-service/internal/logger"
)

// EmailSyncService periodically scans the user's mailbox for recruiting
// email and updates application statuses. The sync itself is not
// implemented yet; the hourly job only logs.
// TODO: connect an IMAP/Gmail client and match messages to applications.
type EmailSyncService struct{}

// NewEmailSyncService creates a new EmailSyncService.
func NewEmailSyncService() *EmailSyncService {
	return &EmailSyncService{}
}

// SyncEmails is invoked by the hourly schedule.
func (s *EmailSyncService) SyncEmails() {
	logger.Log.Info("Starting email sync...")
	logger.Log.Info("Email sync completed.")
}
