package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetcab/dispatch/internal/pkg/errs"
	"github.com/jetcab/dispatch/internal/pkg/models"
	"github.com/jetcab/dispatch/services/booking/mocks"
	locationmocks "github.com/jetcab/dispatch/services/location/mocks"
	taximocks "github.com/jetcab/dispatch/services/taxi/mocks"
)

type ucMocks struct {
	bookingRepo   *mocks.MockBookingRepo
	passengerRepo *mocks.MockPassengerRepo
	taxiRepo      *taximocks.MockTaxiRepo
	locationRepo  *locationmocks.MockLocationRepo
	notifier      *mocks.MockNotifier
}

func newBookingUC(t *testing.T) (*BookingUC, ucMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := ucMocks{
		bookingRepo:   mocks.NewMockBookingRepo(ctrl),
		passengerRepo: mocks.NewMockPassengerRepo(ctrl),
		taxiRepo:      taximocks.NewMockTaxiRepo(ctrl),
		locationRepo:  locationmocks.NewMockLocationRepo(ctrl),
		notifier:      mocks.NewMockNotifier(ctrl),
	}
	uc := NewBookingUC(&models.Config{}, m.bookingRepo, m.passengerRepo, m.taxiRepo, m.locationRepo, m.notifier)
	return uc, m, ctrl
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:                uuid.New(),
		PassengerID:       uuid.New(),
		PickupLocationID:  uuid.New(),
		DropOffLocationID: uuid.New(),
		Status:            models.BookingStatusPending,
		BookedAt:          time.Now(),
	}
}

func confirmedBooking() *models.Booking {
	b := pendingBooking()
	taxiID := uuid.New()
	b.Status = models.BookingStatusConfirmed
	b.TaxiID = &taxiID
	return b
}

func TestCreateBooking_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	pickup := &models.Location{ID: uuid.New(), Latitude: -6.17, Longitude: 106.82}
	dropOff := &models.Location{ID: uuid.New(), Latitude: -6.20, Longitude: 106.85}
	candidates := []uuid.UUID{uuid.New(), uuid.New()}

	req := models.ModifyBookingRequest{
		PassengerID:     passengerID,
		PickupLocation:  models.LocationRequest{Latitude: pickup.Latitude, Longitude: pickup.Longitude},
		DropOffLocation: models.LocationRequest{Latitude: dropOff.Latitude, Longitude: dropOff.Longitude},
	}

	m.passengerRepo.EXPECT().
		GetPassenger(gomock.Any(), passengerID).
		Return(&models.Passenger{ID: passengerID, FullName: "Rina Wijaya"}, nil)
	m.locationRepo.EXPECT().
		FindOrCreate(gomock.Any(), pickup.Latitude, pickup.Longitude).
		Return(pickup, nil)
	m.locationRepo.EXPECT().
		FindOrCreate(gomock.Any(), dropOff.Latitude, dropOff.Longitude).
		Return(dropOff, nil)
	m.bookingRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) (*models.Booking, error) {
			assert.Equal(t, passengerID, b.PassengerID)
			assert.Equal(t, pickup.ID, b.PickupLocationID)
			assert.Equal(t, dropOff.ID, b.DropOffLocationID)
			assert.Equal(t, models.BookingStatusPending, b.Status)
			b.ID = uuid.New()
			b.BookedAt = time.Now()
			return b, nil
		})
	m.taxiRepo.EXPECT().
		GetAvailableTaxiIDs(gomock.Any()).
		Return(candidates, nil)
	m.notifier.EXPECT().
		PublishToCandidates(gomock.Any(), gomock.Any(), candidates)

	// Act
	created, err := uc.CreateBooking(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Nil(t, created.TaxiID)
}

func TestCreateBooking_UnknownPassenger(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	m.passengerRepo.EXPECT().
		GetPassenger(gomock.Any(), passengerID).
		Return(nil, errs.NotFound(errs.CodePassengerNotFound, "passenger not found"))

	_, err := uc.CreateBooking(context.Background(), models.ModifyBookingRequest{PassengerID: passengerID})

	assert.True(t, errs.IsNotFound(err))
}

func TestCreateBooking_FanoutCandidateLookupFailureDoesNotFailCreate(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	loc := &models.Location{ID: uuid.New()}

	m.passengerRepo.EXPECT().GetPassenger(gomock.Any(), passengerID).
		Return(&models.Passenger{ID: passengerID}, nil)
	m.locationRepo.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(loc, nil).Times(2)
	m.bookingRepo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) (*models.Booking, error) {
			b.ID = uuid.New()
			return b, nil
		})
	m.taxiRepo.EXPECT().GetAvailableTaxiIDs(gomock.Any()).
		Return(nil, assert.AnError)
	// No PublishToCandidates expectation: fanout is skipped on lookup failure

	created, err := uc.CreateBooking(context.Background(), models.ModifyBookingRequest{PassengerID: passengerID})

	require.NoError(t, err)
	assert.NotNil(t, created)
}

func TestUpdateBooking_TerminalBookingForbidden(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := pendingBooking()
	b.Status = models.BookingStatusCompleted

	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.UpdateBooking(context.Background(), b.ID, models.ModifyBookingRequest{})

	assert.True(t, errs.IsForbidden(err))
	assert.Equal(t, errs.CodeBookingUpdateForbidden, errs.CodeOf(err))
}

func TestUpdateBooking_ConfirmedPickupChangeForbidden(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := confirmedBooking()
	newPickup := &models.Location{ID: uuid.New(), Latitude: -6.30, Longitude: 106.90}
	sameDropOff := &models.Location{ID: b.DropOffLocationID}

	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	m.locationRepo.EXPECT().FindOrCreate(gomock.Any(), newPickup.Latitude, newPickup.Longitude).
		Return(newPickup, nil)
	m.locationRepo.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sameDropOff, nil)

	_, err := uc.UpdateBooking(context.Background(), b.ID, models.ModifyBookingRequest{
		PickupLocation: models.LocationRequest{Latitude: newPickup.Latitude, Longitude: newPickup.Longitude},
	})

	assert.True(t, errs.IsForbidden(err))
	assert.Equal(t, errs.CodeBookingUpdateForbidden, errs.CodeOf(err))
}

func TestUpdateBooking_ConfirmedSamePickupAllowsDropOffChange(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := confirmedBooking()
	samePickup := &models.Location{ID: b.PickupLocationID}
	newDropOff := &models.Location{ID: uuid.New()}
	candidates := []uuid.UUID{uuid.New()}

	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	m.locationRepo.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(samePickup, nil)
	m.locationRepo.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(newDropOff, nil)
	m.bookingRepo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.Booking) error {
			assert.Equal(t, newDropOff.ID, updated.DropOffLocationID)
			assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
			return nil
		})
	m.taxiRepo.EXPECT().GetAvailableTaxiIDs(gomock.Any()).Return(candidates, nil)
	m.notifier.EXPECT().PublishToCandidates(gomock.Any(), gomock.Any(), candidates)

	updated, err := uc.UpdateBooking(context.Background(), b.ID, models.ModifyBookingRequest{})

	require.NoError(t, err)
	assert.Equal(t, newDropOff.ID, updated.DropOffLocationID)
}

func TestUpdateBookingStatus_IllegalTransitionConflict(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := pendingBooking()
	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	// PENDING cannot jump straight to COMPLETED
	_, err := uc.UpdateBookingStatus(context.Background(), b.ID, models.BookingStatusCompleted)

	assert.True(t, errs.IsConflict(err))
	assert.Equal(t, errs.CodeBookingStatusChange, errs.CodeOf(err))
}

func TestCancelBooking_Pending(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := pendingBooking()
	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	m.bookingRepo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.Booking) error {
			assert.Equal(t, models.BookingStatusCancelled, updated.Status)
			return nil
		})
	m.taxiRepo.EXPECT().GetAvailableTaxiIDs(gomock.Any()).Return(nil, nil)
	m.notifier.EXPECT().PublishToCandidates(gomock.Any(), gomock.Any(), gomock.Nil())

	cancelled, err := uc.CancelBooking(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestCancelBooking_ConfirmedKeepsTaxiAssigned(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := confirmedBooking()
	taxiID := *b.TaxiID

	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	m.bookingRepo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Return(nil)
	m.taxiRepo.EXPECT().GetAvailableTaxiIDs(gomock.Any()).Return(nil, nil)
	m.notifier.EXPECT().PublishToCandidates(gomock.Any(), gomock.Any(), gomock.Nil())
	// No UpdateTaxi expectation: the taxi is not released on cancellation

	cancelled, err := uc.CancelBooking(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.TaxiID)
	assert.Equal(t, taxiID, *cancelled.TaxiID)
}

func TestCancelBooking_TerminalForbidden(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := pendingBooking()
	b.Status = models.BookingStatusCancelled

	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.CancelBooking(context.Background(), b.ID)

	assert.True(t, errs.IsForbidden(err))
	assert.Equal(t, errs.CodeBookingCancelForbidden, errs.CodeOf(err))
}

func TestTakeBooking_Success(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := pendingBooking()
	taxiID := uuid.New()
	claimed := *b
	claimed.Status = models.BookingStatusConfirmed
	claimed.TaxiID = &taxiID

	m.bookingRepo.EXPECT().ClaimBooking(gomock.Any(), b.ID, taxiID).Return(&claimed, nil)
	m.taxiRepo.EXPECT().RemoveAvailableTaxi(gomock.Any(), taxiID).Return(nil)
	m.taxiRepo.EXPECT().GetAvailableTaxiIDs(gomock.Any()).Return(nil, nil)
	m.notifier.EXPECT().PublishToCandidates(gomock.Any(), &claimed, gomock.Nil())

	got, err := uc.TakeBooking(context.Background(), b.ID, taxiID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
	require.NotNil(t, got.TaxiID)
	assert.Equal(t, taxiID, *got.TaxiID)
}

func TestTakeBooking_AlreadyClaimedConflict(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	taxiID := uuid.New()

	m.bookingRepo.EXPECT().ClaimBooking(gomock.Any(), bookingID, taxiID).
		Return(nil, errs.Conflict(errs.CodeBookingNotAvailable, "booking is no longer available"))

	_, err := uc.TakeBooking(context.Background(), bookingID, taxiID)

	assert.True(t, errs.IsConflict(err))
	assert.Equal(t, errs.CodeBookingNotAvailable, errs.CodeOf(err))
}

func TestCompleteBooking_ReleasesTaxi(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := confirmedBooking()
	taxiID := *b.TaxiID
	assigned := &models.Taxi{ID: taxiID, Status: models.TaxiStatusBooked}

	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	m.bookingRepo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.Booking) error {
			assert.Equal(t, models.BookingStatusCompleted, updated.Status)
			return nil
		})
	m.taxiRepo.EXPECT().GetTaxi(gomock.Any(), taxiID).Return(assigned, nil)
	m.taxiRepo.EXPECT().UpdateTaxi(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.Taxi) error {
			assert.Equal(t, models.TaxiStatusAvailable, updated.Status)
			return nil
		})
	m.taxiRepo.EXPECT().GetAvailableTaxiIDs(gomock.Any()).Return([]uuid.UUID{taxiID}, nil)
	m.notifier.EXPECT().PublishToCandidates(gomock.Any(), gomock.Any(), []uuid.UUID{taxiID})

	completed, err := uc.CompleteBooking(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, completed.Status)
}

func TestCompleteBooking_NotConfirmedConflict(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	b := pendingBooking()
	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.CompleteBooking(context.Background(), b.ID)

	assert.True(t, errs.IsConflict(err))
	assert.Equal(t, errs.CodeBookingCannotComplete, errs.CodeOf(err))
}

func TestGetBookingStatistics_CountsByStatus(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	from := time.Now().Add(-24 * time.Hour)
	to := time.Now()
	statuses := []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCompleted,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
		models.BookingStatusCompleted,
	}

	m.bookingRepo.EXPECT().GetStatusesBookedBetween(gomock.Any(), from, to).Return(statuses, nil)

	stats, err := uc.GetBookingStatistics(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalBookings)
	assert.Equal(t, 2, stats.InProgressBookings)
	assert.Equal(t, 3, stats.CompletedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
}

func TestGetBookingStatistics_EmptyWindow(t *testing.T) {
	uc, m, ctrl := newBookingUC(t)
	defer ctrl.Finish()

	from := time.Now().Add(-time.Hour)
	to := time.Now()
	m.bookingRepo.EXPECT().GetStatusesBookedBetween(gomock.Any(), from, to).Return(nil, nil)

	stats, err := uc.GetBookingStatistics(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalBookings)
	assert.Equal(t, 0, stats.InProgressBookings)
}

// claimFakeRepo is an in-memory BookingRepo whose ClaimBooking mirrors the
// SQL row lock with a mutex, so concurrent claims can race for real.
type claimFakeRepo struct {
	mocks.MockBookingRepo // embeds to satisfy the interface; unused methods panic

	mu      sync.Mutex
	booking *models.Booking
}

func (r *claimFakeRepo) ClaimBooking(_ context.Context, bookingID, taxiID uuid.UUID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.booking.ID != bookingID {
		return nil, errs.NotFound(errs.CodeBookingNotFound, "booking not found")
	}
	if r.booking.Status != models.BookingStatusPending {
		return nil, errs.Conflict(errs.CodeBookingNotAvailable, "booking is no longer available")
	}

	r.booking.Status = models.BookingStatusConfirmed
	r.booking.TaxiID = &taxiID

	claimed := *r.booking
	return &claimed, nil
}

func TestTakeBooking_ConcurrentClaimsExactlyOneWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := pendingBooking()
	repo := &claimFakeRepo{booking: b}

	taxiRepo := taximocks.NewMockTaxiRepo(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	taxiRepo.EXPECT().RemoveAvailableTaxi(gomock.Any(), gomock.Any()).Return(nil).MaxTimes(2)
	taxiRepo.EXPECT().GetAvailableTaxiIDs(gomock.Any()).Return(nil, nil).MaxTimes(2)
	notifier.EXPECT().PublishToCandidates(gomock.Any(), gomock.Any(), gomock.Any()).MaxTimes(2)

	uc := NewBookingUC(&models.Config{}, repo, mocks.NewMockPassengerRepo(ctrl), taxiRepo,
		locationmocks.NewMockLocationRepo(ctrl), notifier)

	taxiA := uuid.New()
	taxiB := uuid.New()

	var wg sync.WaitGroup
	results := make([]error, 2)
	winners := make([]*models.Booking, 2)

	for i, taxiID := range []uuid.UUID{taxiA, taxiB} {
		wg.Add(1)
		go func(i int, taxiID uuid.UUID) {
			defer wg.Done()
			winners[i], results[i] = uc.TakeBooking(context.Background(), b.ID, taxiID)
		}(i, taxiID)
	}
	wg.Wait()

	var successes, conflicts int
	var winner *models.Booking
	for i := range results {
		if results[i] == nil {
			successes++
			winner = winners[i]
		} else if errs.IsConflict(results[i]) {
			conflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one claim must win")
	assert.Equal(t, 1, conflicts, "the losing claim must get a conflict")
	require.NotNil(t, winner)
	assert.Equal(t, models.BookingStatusConfirmed, winner.Status)
	require.NotNil(t, winner.TaxiID)
	assert.Contains(t, []uuid.UUID{taxiA, taxiB}, *winner.TaxiID)
}
