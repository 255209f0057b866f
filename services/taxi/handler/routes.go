package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jetcab/dispatch/internal/pkg/models"
	"github.com/jetcab/dispatch/services/taxi"
	httpHandler "github.com/jetcab/dispatch/services/taxi/handler/http"
)

// Handler wires the taxi HTTP handlers
type Handler struct {
	taxiHTTP *httpHandler.TaxiHandler
	cfg      *models.Config
}

// NewHandler creates a new taxi handler
func NewHandler(taxiUC taxi.TaxiUC, cfg *models.Config) *Handler {
	return &Handler{
		taxiHTTP: httpHandler.NewTaxiHandler(taxiUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes for taxis
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	taxis := e.Group("/taxis")
	taxis.POST("", h.taxiHTTP.CreateTaxi)
	taxis.GET("", h.taxiHTTP.ListTaxis)
	taxis.GET("/:taxiID", h.taxiHTTP.GetTaxi)
	taxis.PATCH("/:taxiID/status", h.taxiHTTP.UpdateTaxiStatus)
	taxis.PATCH("/:taxiID/location", h.taxiHTTP.UpdateTaxiLocation)
	taxis.DELETE("/:taxiID", h.taxiHTTP.DeleteTaxi)
}
