package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// NotifyGW sends a booking payload to one taxi's logical channel. Send may
// fail transiently; the fanout owns the retry policy.
type NotifyGW interface {
	Send(ctx context.Context, taxiID uuid.UUID, booking *models.Booking) error
}
