package nats

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	natsio "github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/jetcab/dispatch/internal/pkg/constants"
	"github.com/jetcab/dispatch/internal/pkg/errs"
	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
	natspkg "github.com/jetcab/dispatch/internal/pkg/nats"
	"github.com/jetcab/dispatch/services/booking"
)

// BookingHandler consumes booking claims published by taxis. The claim
// subject runs in a queue group so that each claim message is handled by
// exactly one instance.
type BookingHandler struct {
	bookingUC  booking.BookingUC
	natsClient *natspkg.Client
	subs       []*natsio.Subscription
	cfg        *models.Config
	nrApp      *newrelic.Application
}

// NewBookingHandler creates a new booking NATS handler
func NewBookingHandler(
	bookingUC booking.BookingUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *BookingHandler {
	return &BookingHandler{
		bookingUC:  bookingUC,
		natsClient: natsClient,
		subs:       make([]*natsio.Subscription, 0),
		cfg:        cfg,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers subscribes to the booking claim subject
func (h *BookingHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(
		constants.SubjectBookingTake,
		constants.QueueGroupDispatch,
		h.handleTakeBooking,
	)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	logger.Info("Booking claim consumer started",
		logger.String("subject", constants.SubjectBookingTake),
		logger.String("queue_group", constants.QueueGroupDispatch))
	return nil
}

// handleTakeBooking processes one claim message. Losing a race for a booking
// is a normal outcome here, not a processing failure.
func (h *BookingHandler) handleTakeBooking(msg *natsio.Msg) {
	var txn *newrelic.Transaction
	if h.nrApp != nil {
		txn = h.nrApp.StartTransaction("NATS.TakeBooking")
		defer txn.End()
	}
	ctx := newrelic.NewContext(context.Background(), txn)

	var req models.TakeBookingRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		logger.Error("Failed to unmarshal booking claim",
			logger.Err(err))
		return
	}
	if req.BookingID == uuid.Nil || req.TaxiID == uuid.Nil {
		logger.Error("Booking claim missing booking or taxi ID",
			logger.String("booking_id", req.BookingID.String()),
			logger.String("taxi_id", req.TaxiID.String()))
		return
	}

	claimed, err := h.bookingUC.TakeBooking(ctx, req.BookingID, req.TaxiID)
	if err != nil {
		if errs.IsConflict(err) {
			logger.Info("Booking claim lost the race",
				logger.String("booking_id", req.BookingID.String()),
				logger.String("taxi_id", req.TaxiID.String()))
			return
		}
		logger.Error("Failed to process booking claim",
			logger.String("booking_id", req.BookingID.String()),
			logger.String("taxi_id", req.TaxiID.String()),
			logger.Err(err))
		if txn != nil {
			txn.NoticeError(err)
		}
		return
	}

	logger.Info("Booking claimed via message queue",
		logger.String("booking_id", claimed.ID.String()),
		logger.String("taxi_id", req.TaxiID.String()))
}
