package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/jetcab/dispatch/services/booking BookingRepo,PassengerRepo

// BookingRepo defines the interface for booking data access operations.
// ClaimBooking is the single operation that takes the exclusive per-row
// lock; every other method operates on its own booking row.
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error

	// ClaimBooking atomically confirms a PENDING booking for the given taxi:
	// it locks the booking row, re-checks the status under the lock, marks
	// the taxi BOOKED and the booking CONFIRMED in one transaction. It fails
	// with a Conflict when the booking is no longer PENDING and never
	// partially mutates either row.
	ClaimBooking(ctx context.Context, bookingID, taxiID uuid.UUID) (*models.Booking, error)

	GetStatusesBookedBetween(ctx context.Context, from, to time.Time) ([]models.BookingStatus, error)
}

// PassengerRepo resolves passengers referenced by bookings
type PassengerRepo interface {
	GetPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Passenger, error)
}
