package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jetcab/dispatch/internal/pkg/models"
	"github.com/jetcab/dispatch/services/notification"
	httpHandler "github.com/jetcab/dispatch/services/notification/handler/http"
)

// Handler wires the notification HTTP handlers
type Handler struct {
	failureHTTP *httpHandler.FailureHandler
	cfg         *models.Config
}

// NewHandler creates a new notification handler
func NewHandler(notifierUC notification.NotifierUC, cfg *models.Config) *Handler {
	return &Handler{
		failureHTTP: httpHandler.NewFailureHandler(notifierUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the operator recovery routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	notifications := e.Group("/notifications")
	notifications.GET("/failures", h.failureHTTP.ListFailures)
}
