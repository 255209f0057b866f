package taxi

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// TaxiUC defines the interface for taxi business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/jetcab/dispatch/services/taxi TaxiUC
type TaxiUC interface {
	CreateTaxi(ctx context.Context, req models.ModifyTaxiRequest) (*models.Taxi, error)
	GetTaxi(ctx context.Context, taxiID uuid.UUID) (*models.Taxi, error)
	ListTaxis(ctx context.Context, offset, limit int) (*models.TaxiPage, error)
	UpdateTaxiStatus(ctx context.Context, taxiID uuid.UUID, status models.TaxiStatus) (*models.Taxi, error)
	UpdateTaxiLocation(ctx context.Context, taxiID uuid.UUID, loc models.LocationRequest) (*models.Taxi, error)
	DeleteTaxi(ctx context.Context, taxiID uuid.UUID) error
}
