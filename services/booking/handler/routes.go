package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/jetcab/dispatch/internal/pkg/models"
	natspkg "github.com/jetcab/dispatch/internal/pkg/nats"
	"github.com/jetcab/dispatch/services/booking"
	httpHandler "github.com/jetcab/dispatch/services/booking/handler/http"
	natsHandler "github.com/jetcab/dispatch/services/booking/handler/nats"
)

// Handler combines the HTTP and NATS handlers for the booking service
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
	bookingNATS *natsHandler.BookingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	bookingUC booking.BookingUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
		bookingNATS: natsHandler.NewBookingHandler(bookingUC, natsClient, cfg, nrApp),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes for bookings
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/bookings")
	bookings.POST("", h.bookingHTTP.CreateBooking)
	bookings.GET("/statistics", h.bookingHTTP.GetBookingStatistics)
	bookings.GET("/:bookingID", h.bookingHTTP.GetBooking)
	bookings.PUT("/:bookingID", h.bookingHTTP.UpdateBooking)
	bookings.PATCH("/:bookingID/status", h.bookingHTTP.UpdateBookingStatus)
	bookings.POST("/:bookingID/cancel", h.bookingHTTP.CancelBooking)
	bookings.POST("/:bookingID/take", h.bookingHTTP.TakeBooking)
	bookings.POST("/:bookingID/complete", h.bookingHTTP.CompleteBooking)
}

// InitNATSConsumers initializes the booking claim consumer
func (h *Handler) InitNATSConsumers() error {
	return h.bookingNATS.InitNATSConsumers()
}
