package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/middleware"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/gstransportes/frota/services/notifications"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles HTTP requests for notification operations
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// RegisterRoutes registers the notification routes on an authenticated group
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.PUT("/:id/read", h.MarkRead)
	g.POST("/mark-all-read", h.MarkAllRead)
}

// List returns the caller's notifications, unread only unless ?all=true
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	unreadOnly := c.QueryParam("all") != "true"

	list, err := h.notificationUC.List(c.Request().Context(), userID, unreadOnly)
	if err != nil {
		logger.Error("Failed to list notifications",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err, "Failed to list notifications")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", list)
}

// MarkRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), recipientID, userID); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to mark notification as read")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead marks every unread notification belonging to the caller
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.notificationUC.MarkAllRead(c.Request().Context(), userID); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to mark notifications as read")
	}

	return utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}
