package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
	"github.com/jetcab/dispatch/services/location"
	"github.com/jetcab/dispatch/services/taxi"
)

// TaxiUC implements the fleet management logic
type TaxiUC struct {
	cfg          *models.Config
	taxiRepo     taxi.TaxiRepo
	locationRepo location.LocationRepo
}

// NewTaxiUC creates a new taxi usecase
func NewTaxiUC(cfg *models.Config, taxiRepo taxi.TaxiRepo, locationRepo location.LocationRepo) *TaxiUC {
	return &TaxiUC{
		cfg:          cfg,
		taxiRepo:     taxiRepo,
		locationRepo: locationRepo,
	}
}

// CreateTaxi registers a new taxi; it joins the fleet AVAILABLE
func (uc *TaxiUC) CreateTaxi(ctx context.Context, req models.ModifyTaxiRequest) (*models.Taxi, error) {
	loc, err := uc.locationRepo.FindOrCreate(ctx, req.Location.Latitude, req.Location.Longitude)
	if err != nil {
		return nil, err
	}

	created, err := uc.taxiRepo.CreateTaxi(ctx, &models.Taxi{
		LicensePlate: req.LicensePlate,
		LocationID:   loc.ID,
		Status:       models.TaxiStatusAvailable,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Taxi registered",
		logger.String("taxi_id", created.ID.String()),
		logger.String("license_plate", created.LicensePlate))

	return created, nil
}

// GetTaxi retrieves a taxi by ID
func (uc *TaxiUC) GetTaxi(ctx context.Context, taxiID uuid.UUID) (*models.Taxi, error) {
	return uc.taxiRepo.GetTaxi(ctx, taxiID)
}

// ListTaxis returns one page of the fleet with the total count
func (uc *TaxiUC) ListTaxis(ctx context.Context, offset, limit int) (*models.TaxiPage, error) {
	taxis, total, err := uc.taxiRepo.ListTaxis(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &models.TaxiPage{
		Taxis:  taxis,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateTaxiStatus changes the taxi's operational status and keeps the
// availability pool in step.
func (uc *TaxiUC) UpdateTaxiStatus(ctx context.Context, taxiID uuid.UUID, status models.TaxiStatus) (*models.Taxi, error) {
	current, err := uc.taxiRepo.GetTaxi(ctx, taxiID)
	if err != nil {
		return nil, err
	}

	current.Status = status
	if err := uc.taxiRepo.UpdateTaxi(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

// UpdateTaxiLocation moves the taxi to the given coordinates
func (uc *TaxiUC) UpdateTaxiLocation(ctx context.Context, taxiID uuid.UUID, loc models.LocationRequest) (*models.Taxi, error) {
	current, err := uc.taxiRepo.GetTaxi(ctx, taxiID)
	if err != nil {
		return nil, err
	}

	newLoc, err := uc.locationRepo.FindOrCreate(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}

	current.LocationID = newLoc.ID
	if err := uc.taxiRepo.UpdateTaxi(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

// DeleteTaxi soft-deletes a taxi and removes it from the availability pool
func (uc *TaxiUC) DeleteTaxi(ctx context.Context, taxiID uuid.UUID) error {
	if err := uc.taxiRepo.SoftDeleteTaxi(ctx, taxiID); err != nil {
		return err
	}

	logger.Info("Taxi deleted", logger.String("taxi_id", taxiID.String()))
	return nil
}
