package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/jetcab/dispatch/services/booking BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, req models.ModifyBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, req models.ModifyBookingRequest) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	TakeBooking(ctx context.Context, bookingID, taxiID uuid.UUID) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	GetBookingStatistics(ctx context.Context, from, to time.Time) (*models.BookingStatistics, error)
}
