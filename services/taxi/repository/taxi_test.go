package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetcab/dispatch/internal/pkg/constants"
	"github.com/jetcab/dispatch/internal/pkg/database"
	"github.com/jetcab/dispatch/internal/pkg/errs"
	"github.com/jetcab/dispatch/internal/pkg/models"
)

func setupTaxiRepoTest(t *testing.T) (*TaxiRepo, sqlmock.Sqlmock, *miniredis.Miniredis, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	repo := NewTaxiRepository(&models.Config{}, sqlxDB, redisClient)

	cleanup := func() {
		sqlxDB.Close()
		mr.Close()
	}

	return repo, mock, mr, cleanup
}

func TestCreateTaxi_JoinsAvailabilityPool(t *testing.T) {
	repo, mock, mr, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxi := &models.Taxi{
		LicensePlate: "B 1234 XYZ",
		LocationID:   uuid.New(),
	}

	mock.ExpectExec("^INSERT INTO taxis").
		WithArgs(sqlmock.AnyArg(), taxi.LicensePlate, taxi.LocationID, models.TaxiStatusAvailable, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateTaxi(context.Background(), taxi)

	require.NoError(t, err)
	assert.Equal(t, models.TaxiStatusAvailable, created.Status)

	members, err := mr.SMembers(constants.KeyAvailableTaxis)
	require.NoError(t, err)
	assert.Contains(t, members, created.ID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaxi_NotFound(t *testing.T) {
	repo, mock, _, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxiID := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM taxis WHERE id").
		WithArgs(taxiID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetTaxi(context.Background(), taxiID)

	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, errs.CodeTaxiNotFound, errs.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTaxis_PageWithTotal(t *testing.T) {
	repo, mock, _, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxiA := uuid.New()
	taxiB := uuid.New()
	locationID := uuid.New()

	mock.ExpectQuery("^SELECT (.+) FROM taxis").
		WithArgs(2, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "license_plate", "location_id", "status", "is_deleted"}).
			AddRow(taxiA, "B 1 A", locationID, models.TaxiStatusAvailable, false).
			AddRow(taxiB, "B 2 B", locationID, models.TaxiStatusBooked, false))
	mock.ExpectQuery("^SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	taxis, total, err := repo.ListTaxis(context.Background(), 4, 2)

	require.NoError(t, err)
	assert.Len(t, taxis, 2)
	assert.Equal(t, taxiA, taxis[0].ID)
	assert.Equal(t, int64(6), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTaxis_EmptyFleet(t *testing.T) {
	repo, mock, _, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM taxis").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "license_plate", "location_id", "status", "is_deleted"}))
	mock.ExpectQuery("^SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taxis, total, err := repo.ListTaxis(context.Background(), 0, 10)

	require.NoError(t, err)
	assert.Empty(t, taxis)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTaxi_BookedLeavesAvailabilityPool(t *testing.T) {
	repo, mock, mr, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxi := &models.Taxi{
		ID:           uuid.New(),
		LicensePlate: "B 1 A",
		LocationID:   uuid.New(),
		Status:       models.TaxiStatusBooked,
	}
	mr.SAdd(constants.KeyAvailableTaxis, taxi.ID.String())

	mock.ExpectExec("^UPDATE taxis SET license_plate").
		WithArgs(taxi.LicensePlate, taxi.LocationID, taxi.Status, taxi.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTaxi(context.Background(), taxi)

	require.NoError(t, err)
	isMember, _ := mr.SIsMember(constants.KeyAvailableTaxis, taxi.ID.String())
	assert.False(t, isMember)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTaxi_AvailableRejoinsPool(t *testing.T) {
	repo, mock, mr, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxi := &models.Taxi{
		ID:           uuid.New(),
		LicensePlate: "B 1 A",
		LocationID:   uuid.New(),
		Status:       models.TaxiStatusAvailable,
	}

	mock.ExpectExec("^UPDATE taxis SET license_plate").
		WithArgs(taxi.LicensePlate, taxi.LocationID, taxi.Status, taxi.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTaxi(context.Background(), taxi)

	require.NoError(t, err)
	isMember, _ := mr.SIsMember(constants.KeyAvailableTaxis, taxi.ID.String())
	assert.True(t, isMember)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteTaxi_RemovedFromPool(t *testing.T) {
	repo, mock, mr, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxiID := uuid.New()
	mr.SAdd(constants.KeyAvailableTaxis, taxiID.String())

	mock.ExpectExec("^UPDATE taxis SET is_deleted").
		WithArgs(taxiID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SoftDeleteTaxi(context.Background(), taxiID)

	require.NoError(t, err)
	isMember, _ := mr.SIsMember(constants.KeyAvailableTaxis, taxiID.String())
	assert.False(t, isMember)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteTaxi_NotFound(t *testing.T) {
	repo, mock, _, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxiID := uuid.New()
	mock.ExpectExec("^UPDATE taxis SET is_deleted").
		WithArgs(taxiID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDeleteTaxi(context.Background(), taxiID)

	assert.True(t, errs.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailableTaxiIDs_FromPool(t *testing.T) {
	repo, _, mr, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxiA := uuid.New()
	taxiB := uuid.New()
	mr.SAdd(constants.KeyAvailableTaxis, taxiA.String(), taxiB.String())

	ids, err := repo.GetAvailableTaxiIDs(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{taxiA, taxiB}, ids)
}

func TestGetAvailableTaxiIDs_EmptyPoolFallsBackToDatabase(t *testing.T) {
	repo, mock, _, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxiID := uuid.New()
	mock.ExpectQuery("^SELECT id FROM taxis WHERE status").
		WithArgs(models.TaxiStatusAvailable).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(taxiID))

	ids, err := repo.GetAvailableTaxiIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{taxiID}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveAvailableTaxi(t *testing.T) {
	repo, _, mr, cleanup := setupTaxiRepoTest(t)
	defer cleanup()

	taxiID := uuid.New()
	mr.SAdd(constants.KeyAvailableTaxis, taxiID.String())

	err := repo.RemoveAvailableTaxi(context.Background(), taxiID)

	require.NoError(t, err)
	isMember, _ := mr.SIsMember(constants.KeyAvailableTaxis, taxiID.String())
	assert.False(t, isMember)
}
