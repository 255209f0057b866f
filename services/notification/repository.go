package notification

import (
	"context"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// FailureRepo stores notifications that exhausted their retries so an
// operator can replay or inspect them.
type FailureRepo interface {
	RecordFailure(ctx context.Context, failure models.NotificationFailure) error
	ListFailures(ctx context.Context, limit int64) ([]models.NotificationFailure, error)
}
