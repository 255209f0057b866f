package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jetcab/dispatch/internal/pkg/errs"
	"github.com/jetcab/dispatch/internal/pkg/models"
)

// PassengerRepo implements passenger lookups for booking creation
type PassengerRepo struct {
	db *sqlx.DB
}

// NewPassengerRepository creates a new passenger repository
func NewPassengerRepository(db *sqlx.DB) *PassengerRepo {
	return &PassengerRepo{db: db}
}

// GetPassenger retrieves a passenger by ID
func (r *PassengerRepo) GetPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Passenger, error) {
	query := `SELECT id, full_name, msisdn FROM passengers WHERE id = $1`

	var passenger models.Passenger
	err := r.db.GetContext(ctx, &passenger, query, passengerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound(errs.CodePassengerNotFound, "passenger not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	return &passenger, nil
}
