package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// Notifier fans a booking event out to the supplied candidate taxis.
// Delivery is advisory: the call never returns an error to the booking flow.
//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/jetcab/dispatch/services/booking Notifier
type Notifier interface {
	PublishToCandidates(ctx context.Context, booking *models.Booking, taxiIDs []uuid.UUID)
}
