package location

import (
	"context"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// LocationRepo deduplicates locations by exact coordinate equality.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/jetcab/dispatch/services/location LocationRepo
type LocationRepo interface {
	// FindOrCreate returns the existing location with exactly these
	// coordinates, or inserts a new immutable row.
	FindOrCreate(ctx context.Context, latitude, longitude float64) (*models.Location, error)
}
