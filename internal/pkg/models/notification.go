package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationFailure records a notification that exhausted its retries.
// It is surfaced on the operator recovery endpoint, never to the caller
// whose write triggered the fanout.
type NotificationFailure struct {
	BookingID uuid.UUID `json:"booking_id"`
	TaxiID    uuid.UUID `json:"taxi_id"`
	Reason    string    `json:"reason"`
	Attempts  int       `json:"attempts"`
	FailedAt  time.Time `json:"failed_at"`
}
