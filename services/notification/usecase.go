package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// NotifierUC defines the interface for the notification fanout
type NotifierUC interface {
	// PublishToCandidates dispatches one concurrent delivery task per taxi
	// ID and joins on their completion. A recipient failing its bounded
	// retries is recorded for operator recovery; it never fails the call or
	// delays the other recipients.
	PublishToCandidates(ctx context.Context, booking *models.Booking, taxiIDs []uuid.UUID)

	// ListFailures returns recorded delivery failures, newest first
	ListFailures(ctx context.Context, limit int64) ([]models.NotificationFailure, error)
}
