package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
	nrpkg "github.com/jetcab/dispatch/internal/pkg/newrelic"
	"github.com/jetcab/dispatch/internal/utils"
	"github.com/jetcab/dispatch/services/taxi"
)

// TaxiHandler handles HTTP requests for fleet operations
type TaxiHandler struct {
	taxiUC taxi.TaxiUC
}

// NewTaxiHandler creates a new taxi HTTP handler
func NewTaxiHandler(taxiUC taxi.TaxiUC) *TaxiHandler {
	return &TaxiHandler{
		taxiUC: taxiUC,
	}
}

// CreateTaxi handles taxi registration
func (h *TaxiHandler) CreateTaxi(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Taxis.CreateTaxi")

	var req models.ModifyTaxiRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.LicensePlate == "" {
		return utils.BadRequestResponse(c, "License plate is required")
	}

	created, err := h.taxiUC.CreateTaxi(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create taxi",
			logger.String("license_plate", req.LicensePlate),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Taxi created successfully", created)
}

// ListTaxis handles the paginated fleet listing
func (h *TaxiHandler) ListTaxis(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Taxis.ListTaxis")

	// Parse pagination parameters
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	// Set default limit if not provided
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	page, err := h.taxiUC.ListTaxis(c.Request().Context(), offset, limit)
	if err != nil {
		logger.Error("Failed to list taxis", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Taxis retrieved successfully", page)
}

// GetTaxi handles the taxi lookup request
func (h *TaxiHandler) GetTaxi(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Taxis.GetTaxi")

	taxiID, err := uuid.Parse(c.Param("taxiID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid taxi ID")
	}

	t, err := h.taxiUC.GetTaxi(c.Request().Context(), taxiID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Taxi retrieved successfully", t)
}

// UpdateTaxiStatus handles taxi status updates
func (h *TaxiHandler) UpdateTaxiStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Taxis.UpdateTaxiStatus")

	taxiID, err := uuid.Parse(c.Param("taxiID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid taxi ID")
	}

	var req models.TaxiStatusRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	updated, err := h.taxiUC.UpdateTaxiStatus(c.Request().Context(), taxiID, req.Status)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Taxi status updated successfully", updated)
}

// UpdateTaxiLocation handles taxi location updates
func (h *TaxiHandler) UpdateTaxiLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Taxis.UpdateTaxiLocation")

	taxiID, err := uuid.Parse(c.Param("taxiID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid taxi ID")
	}

	var req models.LocationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.taxiUC.UpdateTaxiLocation(c.Request().Context(), taxiID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Taxi location updated successfully", updated)
}

// DeleteTaxi handles taxi removal (soft delete)
func (h *TaxiHandler) DeleteTaxi(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Taxis.DeleteTaxi")

	taxiID, err := uuid.Parse(c.Param("taxiID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid taxi ID")
	}

	if err := h.taxiUC.DeleteTaxi(c.Request().Context(), taxiID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Taxi deleted successfully", nil)
}
