package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jetcab/dispatch/internal/pkg/models"
)

// LocationRepo implements the location repository interface
type LocationRepo struct {
	db *sqlx.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sqlx.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// FindOrCreate returns the location with exactly these coordinates,
// inserting a new row when none exists. Locations are immutable, so the
// returned row never changes afterwards.
func (r *LocationRepo) FindOrCreate(ctx context.Context, latitude, longitude float64) (*models.Location, error) {
	query := `SELECT id, latitude, longitude FROM locations WHERE latitude = $1 AND longitude = $2 LIMIT 1`

	var location models.Location
	err := r.db.GetContext(ctx, &location, query, latitude, longitude)
	if err == nil {
		return &location, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	location = models.Location{
		ID:        uuid.New(),
		Latitude:  latitude,
		Longitude: longitude,
	}

	insertQuery := `INSERT INTO locations (id, latitude, longitude) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, insertQuery, location.ID, location.Latitude, location.Longitude); err != nil {
		return nil, fmt.Errorf("failed to insert location: %w", err)
	}

	return &location, nil
}
