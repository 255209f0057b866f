package models

import "github.com/google/uuid"

// Location represents a point a booking or taxi refers to. Locations are
// immutable once created and deduplicated by exact coordinate equality.
type Location struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
}

// LocationRequest carries raw coordinates in inbound payloads
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
