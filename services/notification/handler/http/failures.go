package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	nrpkg "github.com/jetcab/dispatch/internal/pkg/newrelic"
	"github.com/jetcab/dispatch/internal/utils"
	"github.com/jetcab/dispatch/services/notification"
)

// FailureHandler exposes recorded notification failures for operator recovery
type FailureHandler struct {
	notifierUC notification.NotifierUC
}

// NewFailureHandler creates a new failure HTTP handler
func NewFailureHandler(notifierUC notification.NotifierUC) *FailureHandler {
	return &FailureHandler{
		notifierUC: notifierUC,
	}
}

// ListFailures returns recorded delivery failures, newest first
func (h *FailureHandler) ListFailures(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.ListFailures")

	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "Invalid 'limit' parameter")
		}
		limit = parsed
	}

	failures, err := h.notifierUC.ListFailures(c.Request().Context(), limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification failures retrieved successfully", failures)
}
