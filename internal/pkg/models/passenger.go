package models

import "github.com/google/uuid"

// Passenger represents a rider who owns bookings
type Passenger struct {
	ID       uuid.UUID `json:"id" db:"id"`
	FullName string    `json:"full_name" db:"full_name"`
	MSISDN   string    `json:"msisdn" db:"msisdn"`
}
