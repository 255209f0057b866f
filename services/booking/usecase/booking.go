package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/errs"
	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
	nrpkg "github.com/jetcab/dispatch/internal/pkg/newrelic"
	"github.com/jetcab/dispatch/services/booking"
	"github.com/jetcab/dispatch/services/location"
	"github.com/jetcab/dispatch/services/taxi"
)

// BookingUC implements the booking business logic: CRUD, the dispatch
// coordinator and the statistics window. Every state-affecting operation ends
// with a fanout of the booking to all currently available taxis.
type BookingUC struct {
	cfg           *models.Config
	bookingRepo   booking.BookingRepo
	passengerRepo booking.PassengerRepo
	taxiRepo      taxi.TaxiRepo
	locationRepo  location.LocationRepo
	notifier      booking.Notifier
}

// NewBookingUC creates a new booking usecase
func NewBookingUC(
	cfg *models.Config,
	bookingRepo booking.BookingRepo,
	passengerRepo booking.PassengerRepo,
	taxiRepo taxi.TaxiRepo,
	locationRepo location.LocationRepo,
	notifier booking.Notifier,
) *BookingUC {
	return &BookingUC{
		cfg:           cfg,
		bookingRepo:   bookingRepo,
		passengerRepo: passengerRepo,
		taxiRepo:      taxiRepo,
		locationRepo:  locationRepo,
		notifier:      notifier,
	}
}

// CreateBooking registers a new PENDING booking and notifies the available
// taxis about it.
func (uc *BookingUC) CreateBooking(ctx context.Context, req models.ModifyBookingRequest) (*models.Booking, error) {
	if _, err := uc.passengerRepo.GetPassenger(ctx, req.PassengerID); err != nil {
		return nil, err
	}

	pickup, err := uc.locationRepo.FindOrCreate(ctx, req.PickupLocation.Latitude, req.PickupLocation.Longitude)
	if err != nil {
		return nil, err
	}
	dropOff, err := uc.locationRepo.FindOrCreate(ctx, req.DropOffLocation.Latitude, req.DropOffLocation.Longitude)
	if err != nil {
		return nil, err
	}

	created, err := uc.bookingRepo.CreateBooking(ctx, &models.Booking{
		PassengerID:       req.PassengerID,
		PickupLocationID:  pickup.ID,
		DropOffLocationID: dropOff.ID,
		Status:            models.BookingStatusPending,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Booking created",
		logger.String("booking_id", created.ID.String()),
		logger.String("passenger_id", created.PassengerID.String()))

	uc.fanout(ctx, created)
	return created, nil
}

// GetBooking retrieves a booking by ID
func (uc *BookingUC) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, bookingID)
}

// UpdateBooking replaces a booking's pickup and drop-off. Terminal bookings
// are frozen, and once a booking is CONFIRMED its pickup may no longer move:
// the claiming taxi committed to the pickup point it saw.
func (uc *BookingUC) UpdateBooking(ctx context.Context, bookingID uuid.UUID, req models.ModifyBookingRequest) (*models.Booking, error) {
	current, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if current.Status.IsTerminal() {
		return nil, errs.Forbidden(errs.CodeBookingUpdateForbidden,
			"booking in status "+string(current.Status)+" cannot be updated")
	}

	pickup, err := uc.locationRepo.FindOrCreate(ctx, req.PickupLocation.Latitude, req.PickupLocation.Longitude)
	if err != nil {
		return nil, err
	}
	dropOff, err := uc.locationRepo.FindOrCreate(ctx, req.DropOffLocation.Latitude, req.DropOffLocation.Longitude)
	if err != nil {
		return nil, err
	}

	if current.Status == models.BookingStatusConfirmed && pickup.ID != current.PickupLocationID {
		return nil, errs.Forbidden(errs.CodeBookingUpdateForbidden,
			"pickup location of a confirmed booking cannot be changed")
	}

	current.PickupLocationID = pickup.ID
	current.DropOffLocationID = dropOff.ID
	if err := uc.bookingRepo.UpdateBooking(ctx, current); err != nil {
		return nil, err
	}

	uc.fanout(ctx, current)
	return current, nil
}

// UpdateBookingStatus applies a generic status transition, rejecting any move
// the lifecycle table disallows.
func (uc *BookingUC) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	current, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, errs.Conflict(errs.CodeBookingStatusChange,
			"booking cannot change status from "+string(current.Status)+" to "+string(status))
	}

	current.Status = status
	if err := uc.bookingRepo.UpdateBooking(ctx, current); err != nil {
		return nil, err
	}

	uc.fanout(ctx, current)
	return current, nil
}

// CancelBooking cancels a PENDING or CONFIRMED booking. Cancelling a
// CONFIRMED booking does not free the assigned taxi; an operator resolves
// that manually.
func (uc *BookingUC) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	current, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(models.BookingStatusCancelled) {
		return nil, errs.Forbidden(errs.CodeBookingCancelForbidden,
			"booking in status "+string(current.Status)+" cannot be cancelled")
	}

	if current.Status == models.BookingStatusConfirmed && current.TaxiID != nil {
		logger.Warn("Cancelling a confirmed booking with an assigned taxi",
			logger.String("booking_id", current.ID.String()),
			logger.String("taxi_id", current.TaxiID.String()))
	}

	current.Status = models.BookingStatusCancelled
	if err := uc.bookingRepo.UpdateBooking(ctx, current); err != nil {
		return nil, err
	}

	uc.fanout(ctx, current)
	return current, nil
}

// TakeBooking lets a taxi claim a PENDING booking. The repository performs
// the claim under an exclusive row lock, so of any number of concurrent
// claims for the same booking exactly one succeeds; the losers get a
// Conflict.
func (uc *BookingUC) TakeBooking(ctx context.Context, bookingID, taxiID uuid.UUID) (*models.Booking, error) {
	claimed, err := uc.bookingRepo.ClaimBooking(ctx, bookingID, taxiID)
	if err != nil {
		return nil, err
	}

	if err := uc.taxiRepo.RemoveAvailableTaxi(ctx, taxiID); err != nil {
		logger.Warn("Failed to evict claimed taxi from availability pool",
			logger.String("taxi_id", taxiID.String()),
			logger.Err(err))
	}

	logger.Info("Booking claimed",
		logger.String("booking_id", claimed.ID.String()),
		logger.String("taxi_id", taxiID.String()))

	uc.fanout(ctx, claimed)
	return claimed, nil
}

// CompleteBooking finishes a CONFIRMED booking and returns its taxi to the
// available pool.
func (uc *BookingUC) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	current, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if current.Status != models.BookingStatusConfirmed {
		return nil, errs.Conflict(errs.CodeBookingCannotComplete,
			"booking in status "+string(current.Status)+" cannot be completed")
	}

	current.Status = models.BookingStatusCompleted
	if err := uc.bookingRepo.UpdateBooking(ctx, current); err != nil {
		return nil, err
	}

	if current.TaxiID != nil {
		if err := uc.releaseTaxi(ctx, *current.TaxiID); err != nil {
			logger.Error("Failed to release taxi after completed booking",
				logger.String("booking_id", current.ID.String()),
				logger.String("taxi_id", current.TaxiID.String()),
				logger.Err(err))
		}
	}

	logger.Info("Booking completed",
		logger.String("booking_id", current.ID.String()))

	uc.fanout(ctx, current)
	return current, nil
}

// GetBookingStatistics aggregates booking counts over the [from, to] window.
// PENDING and CONFIRMED both count as in progress.
func (uc *BookingUC) GetBookingStatistics(ctx context.Context, from, to time.Time) (*models.BookingStatistics, error) {
	var statuses []models.BookingStatus
	err := nrpkg.WithSegment(ctx, "BookingRepo.GetStatusesBookedBetween", func() error {
		var repoErr error
		statuses, repoErr = uc.bookingRepo.GetStatusesBookedBetween(ctx, from, to)
		return repoErr
	})
	if err != nil {
		return nil, err
	}

	stats := &models.BookingStatistics{TotalBookings: len(statuses)}
	for _, status := range statuses {
		switch status {
		case models.BookingStatusPending, models.BookingStatusConfirmed:
			stats.InProgressBookings++
		case models.BookingStatusCompleted:
			stats.CompletedBookings++
		case models.BookingStatusCancelled:
			stats.CancelledBookings++
		}
	}

	return stats, nil
}

// releaseTaxi flips the taxi back to AVAILABLE so it re-enters the fanout
// candidate set.
func (uc *BookingUC) releaseTaxi(ctx context.Context, taxiID uuid.UUID) error {
	t, err := uc.taxiRepo.GetTaxi(ctx, taxiID)
	if err != nil {
		return err
	}

	t.Status = models.TaxiStatusAvailable
	return uc.taxiRepo.UpdateTaxi(ctx, t)
}

// fanout notifies every available taxi about the booking's current state.
// Fanout is advisory: a failed candidate lookup is logged and the triggering
// write still succeeds.
func (uc *BookingUC) fanout(ctx context.Context, b *models.Booking) {
	taxiIDs, err := uc.taxiRepo.GetAvailableTaxiIDs(ctx)
	if err != nil {
		logger.Error("Failed to load fanout candidates",
			logger.String("booking_id", b.ID.String()),
			logger.Err(err))
		return
	}

	uc.notifier.PublishToCandidates(ctx, b, taxiIDs)
}
