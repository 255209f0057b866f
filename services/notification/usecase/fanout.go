package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
	"github.com/jetcab/dispatch/internal/pkg/retry"
	"github.com/jetcab/dispatch/services/notification"
)

// NotifierUC fans a booking out to every candidate taxi. Each recipient gets
// its own delivery goroutine with a bounded fixed-delay retry, so one slow or
// failing recipient never holds up the rest.
type NotifierUC struct {
	cfg         *models.Config
	gateway     notification.NotifyGW
	failureRepo notification.FailureRepo
	retrier     *retry.Retrier
}

// NewNotifierUC creates the notification fanout usecase
func NewNotifierUC(
	cfg *models.Config,
	gateway notification.NotifyGW,
	failureRepo notification.FailureRepo,
) *NotifierUC {
	retrier := retry.New(retry.FixedDelayConfig(
		cfg.Notify.MaxRetries,
		time.Duration(cfg.Notify.RetryDelayMs)*time.Millisecond,
	))

	return &NotifierUC{
		cfg:         cfg,
		gateway:     gateway,
		failureRepo: failureRepo,
		retrier:     retrier,
	}
}

// PublishToCandidates dispatches one delivery task per taxi and waits for all
// of them to finish. An empty candidate set completes immediately.
func (uc *NotifierUC) PublishToCandidates(ctx context.Context, booking *models.Booking, taxiIDs []uuid.UUID) {
	if len(taxiIDs) == 0 {
		logger.Info("No available taxis to notify",
			logger.String("booking_id", booking.ID.String()))
		return
	}

	var wg sync.WaitGroup
	for _, taxiID := range taxiIDs {
		wg.Add(1)
		go func(taxiID uuid.UUID) {
			defer wg.Done()
			uc.notifyTaxi(booking, taxiID)
		}(taxiID)
	}
	wg.Wait()

	logger.Info("Booking fanout completed",
		logger.String("booking_id", booking.ID.String()),
		logger.Int("candidates", len(taxiIDs)))
}

// notifyTaxi runs the bounded retry for a single recipient and records the
// failure once the budget is exhausted. Delivery tasks are detached from the
// caller's context: an in-flight fanout finishes its attempts even when the
// triggering request has already returned.
func (uc *NotifierUC) notifyTaxi(booking *models.Booking, taxiID uuid.UUID) {
	ctx := context.Background()

	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.gateway.Send(ctx, taxiID, booking)
	})
	if err == nil {
		return
	}

	logger.Error("Failed to notify taxi after exhausting retries",
		logger.String("booking_id", booking.ID.String()),
		logger.String("taxi_id", taxiID.String()),
		logger.Err(err))

	failure := models.NotificationFailure{
		BookingID: booking.ID,
		TaxiID:    taxiID,
		Reason:    err.Error(),
		Attempts:  uc.retrier.Attempts(),
		FailedAt:  time.Now(),
	}
	if recordErr := uc.failureRepo.RecordFailure(ctx, failure); recordErr != nil {
		logger.Error("Failed to record notification failure",
			logger.String("booking_id", booking.ID.String()),
			logger.String("taxi_id", taxiID.String()),
			logger.Err(recordErr))
	}
}

// ListFailures exposes the recorded delivery failures for operators
func (uc *NotifierUC) ListFailures(ctx context.Context, limit int64) ([]models.NotificationFailure, error) {
	return uc.failureRepo.ListFailures(ctx, limit)
}
