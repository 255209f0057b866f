package models

import "github.com/google/uuid"

// TaxiStatus represents the operational status of a taxi
type TaxiStatus string

const (
	TaxiStatusAvailable TaxiStatus = "AVAILABLE"
	TaxiStatusBooked    TaxiStatus = "BOOKED"
	TaxiStatusOffDuty   TaxiStatus = "OFF_DUTY"
)

// Taxi represents a vehicle in the fleet. A taxi is BOOKED exactly while it
// is referenced by one non-terminal booking; removal is a soft delete.
type Taxi struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	LicensePlate string     `json:"license_plate" db:"license_plate"`
	LocationID   uuid.UUID  `json:"location_id" db:"location_id"`
	Status       TaxiStatus `json:"status" db:"status"`
	Deleted      bool       `json:"-" db:"is_deleted"`
}

// TaxiPage is one page of the fleet listing
type TaxiPage struct {
	Taxis  []Taxi `json:"taxis"`
	Total  int64  `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// ModifyTaxiRequest is the inbound payload for creating a taxi
type ModifyTaxiRequest struct {
	LicensePlate string          `json:"license_plate"`
	Location     LocationRequest `json:"location"`
}

// TaxiStatusRequest is the inbound payload for a taxi status update
type TaxiStatusRequest struct {
	Status TaxiStatus `json:"status"`
}
