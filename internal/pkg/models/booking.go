package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// CanTransitionTo reports whether a booking may move from s to next.
// PENDING may become CONFIRMED or CANCELLED, CONFIRMED may become COMPLETED
// or CANCELLED; COMPLETED and CANCELLED are terminal. The predicate is pure
// so every status-changing operation consults the same table.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible from s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Booking represents a ride request record. TaxiID is set only once the
// booking has been claimed (CONFIRMED) and is never cleared afterwards.
// BookedAt is set at creation and never mutated.
type Booking struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	PassengerID       uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	PickupLocationID  uuid.UUID     `json:"pickup_location_id" db:"pickup_location_id"`
	DropOffLocationID uuid.UUID     `json:"dropoff_location_id" db:"dropoff_location_id"`
	Status            BookingStatus `json:"status" db:"status"`
	TaxiID            *uuid.UUID    `json:"taxi_id,omitempty" db:"taxi_id"`
	BookedAt          time.Time     `json:"booked_at" db:"booked_at"`
}

// ModifyBookingRequest is the inbound payload for creating or updating a booking
type ModifyBookingRequest struct {
	PassengerID     uuid.UUID       `json:"passenger_id"`
	PickupLocation  LocationRequest `json:"pickup_location"`
	DropOffLocation LocationRequest `json:"dropoff_location"`
}

// BookingStatusRequest is the inbound payload for a generic status update
type BookingStatusRequest struct {
	Status BookingStatus `json:"status"`
}

// TakeBookingRequest is the inbound payload for a taxi claiming a booking,
// accepted over HTTP and on the booking claim NATS subject
type TakeBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id"`
	TaxiID    uuid.UUID `json:"taxi_id"`
}

// BookingStatistics aggregates booking counts by status over a window
type BookingStatistics struct {
	TotalBookings      int `json:"total_bookings"`
	InProgressBookings int `json:"in_progress_bookings"`
	CompletedBookings  int `json:"completed_bookings"`
	CancelledBookings  int `json:"cancelled_bookings"`
}
