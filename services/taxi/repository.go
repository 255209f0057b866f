package taxi

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// TaxiRepo defines the interface for taxi data access operations. The
// available-taxi pool is kept in Redis alongside the durable rows; UpdateTaxi
// keeps the pool in sync with the persisted status.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/jetcab/dispatch/services/taxi TaxiRepo
type TaxiRepo interface {
	CreateTaxi(ctx context.Context, taxi *models.Taxi) (*models.Taxi, error)
	GetTaxi(ctx context.Context, taxiID uuid.UUID) (*models.Taxi, error)

	// ListTaxis returns one page of the fleet ordered by license plate,
	// plus the total number of non-deleted taxis.
	ListTaxis(ctx context.Context, offset, limit int) ([]models.Taxi, int64, error)
	UpdateTaxi(ctx context.Context, taxi *models.Taxi) error
	SoftDeleteTaxi(ctx context.Context, taxiID uuid.UUID) error

	// GetAvailableTaxiIDs returns the fanout candidate set: every taxi
	// currently AVAILABLE.
	GetAvailableTaxiIDs(ctx context.Context) ([]uuid.UUID, error)

	// RemoveAvailableTaxi evicts a taxi from the availability pool after a
	// claim committed outside UpdateTaxi.
	RemoveAvailableTaxi(ctx context.Context, taxiID uuid.UUID) error
}
