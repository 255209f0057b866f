package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jetcab/dispatch/internal/pkg/constants"
	"github.com/jetcab/dispatch/internal/pkg/database"
	"github.com/jetcab/dispatch/internal/pkg/errs"
	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
)

const taxiColumns = `id, license_plate, location_id, status, is_deleted`

// TaxiRepo implements the taxi repository interface. Durable rows live in
// Postgres; the availability pool is mirrored into a Redis set so the fanout
// can read the candidate set cheaply.
type TaxiRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewTaxiRepository creates a new taxi repository
func NewTaxiRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *TaxiRepo {
	return &TaxiRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// CreateTaxi inserts a new taxi; status defaults to AVAILABLE
func (r *TaxiRepo) CreateTaxi(ctx context.Context, taxi *models.Taxi) (*models.Taxi, error) {
	if taxi.ID == uuid.Nil {
		taxi.ID = uuid.New()
	}
	if taxi.Status == "" {
		taxi.Status = models.TaxiStatusAvailable
	}

	query := `
		INSERT INTO taxis (id, license_plate, location_id, status, is_deleted)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		taxi.ID, taxi.LicensePlate, taxi.LocationID, taxi.Status, taxi.Deleted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert taxi: %w", err)
	}

	r.syncAvailabilityPool(ctx, taxi)
	return taxi, nil
}

// GetTaxi retrieves a taxi by ID; soft-deleted taxis are invisible
func (r *TaxiRepo) GetTaxi(ctx context.Context, taxiID uuid.UUID) (*models.Taxi, error) {
	query := `SELECT ` + taxiColumns + ` FROM taxis WHERE id = $1 AND is_deleted = false`

	var taxi models.Taxi
	err := r.db.GetContext(ctx, &taxi, query, taxiID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound(errs.CodeTaxiNotFound, "taxi not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get taxi: %w", err)
	}

	return &taxi, nil
}

// ListTaxis retrieves one page of the fleet with the total row count.
// Soft-deleted taxis are excluded.
func (r *TaxiRepo) ListTaxis(ctx context.Context, offset, limit int) ([]models.Taxi, int64, error) {
	query := `
		SELECT ` + taxiColumns + ` FROM taxis
		WHERE is_deleted = false
		ORDER BY license_plate
		LIMIT $1 OFFSET $2
	`

	taxis := []models.Taxi{}
	if err := r.db.SelectContext(ctx, &taxis, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list taxis: %w", err)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM taxis WHERE is_deleted = false`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("failed to count taxis: %w", err)
	}

	return taxis, total, nil
}

// UpdateTaxi persists the taxi and keeps the availability pool in sync with
// its status.
func (r *TaxiRepo) UpdateTaxi(ctx context.Context, taxi *models.Taxi) error {
	query := `UPDATE taxis SET license_plate = $1, location_id = $2, status = $3 WHERE id = $4 AND is_deleted = false`

	result, err := r.db.ExecContext(ctx, query,
		taxi.LicensePlate, taxi.LocationID, taxi.Status, taxi.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update taxi: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errs.NotFound(errs.CodeTaxiNotFound, "taxi not found")
	}

	r.syncAvailabilityPool(ctx, taxi)
	return nil
}

// SoftDeleteTaxi marks the taxi deleted; the row is never removed
func (r *TaxiRepo) SoftDeleteTaxi(ctx context.Context, taxiID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE taxis SET is_deleted = true WHERE id = $1 AND is_deleted = false`, taxiID)
	if err != nil {
		return fmt.Errorf("failed to delete taxi: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errs.NotFound(errs.CodeTaxiNotFound, "taxi not found")
	}

	if err := r.redisClient.SRem(ctx, constants.KeyAvailableTaxis, taxiID.String()); err != nil {
		logger.Warn("Failed to remove deleted taxi from availability pool",
			logger.String("taxi_id", taxiID.String()),
			logger.Err(err))
	}
	return nil
}

// GetAvailableTaxiIDs returns the candidate set for the notification fanout.
// The Redis pool is authoritative when populated; on a miss or Redis error
// the durable rows are consulted directly.
func (r *TaxiRepo) GetAvailableTaxiIDs(ctx context.Context) ([]uuid.UUID, error) {
	members, err := r.redisClient.SMembers(ctx, constants.KeyAvailableTaxis)
	if err == nil && len(members) > 0 {
		ids := make([]uuid.UUID, 0, len(members))
		for _, member := range members {
			id, parseErr := uuid.Parse(member)
			if parseErr != nil {
				logger.Warn("Skipping malformed taxi ID in availability pool",
					logger.String("member", member))
				continue
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	if err != nil {
		logger.Warn("Failed to read availability pool from Redis, falling back to database",
			logger.Err(err))
	}

	query := `SELECT id FROM taxis WHERE status = $1 AND is_deleted = false`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, models.TaxiStatusAvailable); err != nil {
		return nil, fmt.Errorf("failed to list available taxis: %w", err)
	}

	return ids, nil
}

// RemoveAvailableTaxi evicts a taxi from the availability pool. Used by the
// claim path, where the durable status flip happens inside the booking
// transaction.
func (r *TaxiRepo) RemoveAvailableTaxi(ctx context.Context, taxiID uuid.UUID) error {
	return r.redisClient.SRem(ctx, constants.KeyAvailableTaxis, taxiID.String())
}

// syncAvailabilityPool mirrors the persisted status into the Redis set.
// Pool maintenance is best-effort: the durable rows remain the source of
// truth and GetAvailableTaxiIDs falls back to them.
func (r *TaxiRepo) syncAvailabilityPool(ctx context.Context, taxi *models.Taxi) {
	var err error
	if taxi.Status == models.TaxiStatusAvailable && !taxi.Deleted {
		err = r.redisClient.SAdd(ctx, constants.KeyAvailableTaxis, taxi.ID.String())
	} else {
		err = r.redisClient.SRem(ctx, constants.KeyAvailableTaxis, taxi.ID.String())
	}
	if err != nil {
		logger.Warn("Failed to sync taxi availability pool",
			logger.String("taxi_id", taxi.ID.String()),
			logger.String("status", string(taxi.Status)),
			logger.Err(err))
	}
}
