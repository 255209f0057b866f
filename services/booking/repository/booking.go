package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jetcab/dispatch/internal/pkg/errs"
	"github.com/jetcab/dispatch/internal/pkg/models"
)

const bookingColumns = `id, passenger_id, pickup_location_id, dropoff_location_id, status, taxi_id, booked_at`

// BookingRepo implements the booking repository interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateBooking inserts a new booking. Status defaults to PENDING and
// booked_at is stamped once here.
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if booking.BookedAt.IsZero() {
		booking.BookedAt = time.Now()
	}

	query := `
		INSERT INTO bookings (id, passenger_id, pickup_location_id, dropoff_location_id, status, taxi_id, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.PassengerID, booking.PickupLocationID,
		booking.DropOffLocationID, booking.Status, booking.TaxiID, booking.BookedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound(errs.CodeBookingNotFound, "booking not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// UpdateBooking persists the mutable columns of a booking. booked_at is
// write-once and deliberately excluded.
func (r *BookingRepo) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET pickup_location_id = $1, dropoff_location_id = $2, status = $3, taxi_id = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		booking.PickupLocationID, booking.DropOffLocationID,
		booking.Status, booking.TaxiID, booking.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errs.NotFound(errs.CodeBookingNotFound, "booking not found")
	}

	return nil
}

// ClaimBooking confirms a PENDING booking for the given taxi. The booking
// row is locked with FOR UPDATE for the duration of the check-and-set, so
// two concurrent claims serialize and the loser observes CONFIRMED. Both
// writes commit atomically or not at all.
func (r *BookingRepo) ClaimBooking(ctx context.Context, bookingID, taxiID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	var booking models.Booking
	err = tx.GetContext(ctx, &booking, lockQuery, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound(errs.CodeBookingNotFound, "booking not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	// Re-check under the lock: a concurrent claim may have confirmed it
	if booking.Status != models.BookingStatusPending {
		return nil, errs.Conflict(errs.CodeBookingNotAvailable,
			fmt.Sprintf("booking is not available for taking: current status is %s", booking.Status))
	}

	taxiQuery := `SELECT id, license_plate, location_id, status, is_deleted FROM taxis WHERE id = $1 AND is_deleted = false`

	var taxi models.Taxi
	err = tx.GetContext(ctx, &taxi, taxiQuery, taxiID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound(errs.CodeTaxiNotFound, "taxi not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get taxi: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE taxis SET status = $1 WHERE id = $2`,
		models.TaxiStatusBooked, taxi.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update taxi status: %w", err)
	}

	result, err := tx.ExecContext(ctx, `UPDATE bookings SET status = $1, taxi_id = $2 WHERE id = $3`,
		models.BookingStatusConfirmed, taxi.ID, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("booking not found or was modified by another transaction")
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	booking.Status = models.BookingStatusConfirmed
	booking.TaxiID = &taxi.ID
	return &booking, nil
}

// GetStatusesBookedBetween returns the statuses of all bookings whose
// booked_at falls in [from, to].
func (r *BookingRepo) GetStatusesBookedBetween(ctx context.Context, from, to time.Time) ([]models.BookingStatus, error) {
	query := `SELECT status FROM bookings WHERE booked_at BETWEEN $1 AND $2`

	var statuses []models.BookingStatus
	if err := r.db.SelectContext(ctx, &statuses, query, from, to); err != nil {
		return nil, fmt.Errorf("failed to get booking statuses: %w", err)
	}

	return statuses, nil
}
