package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
	nrpkg "github.com/jetcab/dispatch/internal/pkg/newrelic"
	"github.com/jetcab/dispatch/internal/utils"
	"github.com/jetcab/dispatch/services/booking"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking handles the booking creation request
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.CreateBooking")

	var req models.ModifyBookingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.PassengerID == uuid.Nil {
		return utils.BadRequestResponse(c, "Passenger ID is required")
	}

	created, err := h.bookingUC.CreateBooking(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create booking",
			logger.String("passenger_id", req.PassengerID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", created)
}

// GetBooking handles the booking lookup request
func (h *BookingHandler) GetBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.GetBooking")

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", b)
}

// UpdateBooking handles the booking update request
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.UpdateBooking")

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.ModifyBookingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.bookingUC.UpdateBooking(c.Request().Context(), bookingID, req)
	if err != nil {
		logger.Error("Failed to update booking",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking updated successfully", updated)
}

// UpdateBookingStatus handles a generic booking status transition
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.UpdateBookingStatus")

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.BookingStatusRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	updated, err := h.bookingUC.UpdateBookingStatus(c.Request().Context(), bookingID, req.Status)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated successfully", updated)
}

// CancelBooking handles the booking cancellation request
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.CancelBooking")

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	cancelled, err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", cancelled)
}

// TakeBooking handles a taxi claiming a booking
func (h *BookingHandler) TakeBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.TakeBooking")

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.TakeBookingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.TaxiID == uuid.Nil {
		return utils.BadRequestResponse(c, "Taxi ID is required")
	}

	nrpkg.AddTransactionAttribute(txn, "booking.id", bookingID.String())
	nrpkg.AddTransactionAttribute(txn, "taxi.id", req.TaxiID.String())

	claimed, err := h.bookingUC.TakeBooking(c.Request().Context(), bookingID, req.TaxiID)
	if err != nil {
		logger.Warn("Booking claim rejected",
			logger.String("booking_id", bookingID.String()),
			logger.String("taxi_id", req.TaxiID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking taken successfully", claimed)
}

// CompleteBooking handles the booking completion request
func (h *BookingHandler) CompleteBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.CompleteBooking")

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	completed, err := h.bookingUC.CompleteBooking(c.Request().Context(), bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking completed successfully", completed)
}

// GetBookingStatistics handles the statistics window request. The window
// bounds come as RFC3339 query parameters and both are required.
func (h *BookingHandler) GetBookingStatistics(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.GetBookingStatistics")

	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid or missing 'from' parameter, expected RFC3339 timestamp")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid or missing 'to' parameter, expected RFC3339 timestamp")
	}
	if to.Before(from) {
		return utils.BadRequestResponse(c, "'to' must not be before 'from'")
	}

	stats, err := h.bookingUC.GetBookingStatistics(c.Request().Context(), from, to)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking statistics retrieved successfully", stats)
}
