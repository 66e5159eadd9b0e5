package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/middleware"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/gstransportes/frota/services/tires"
	"github.com/labstack/echo/v4"
)

// TireHandler handles HTTP requests for tire operations
type TireHandler struct {
	tireUC tires.TireUC
}

// NewTireHandler creates a new tire handler
func NewTireHandler(tireUC tires.TireUC) *TireHandler {
	return &TireHandler{tireUC: tireUC}
}

// RegisterRoutes registers the tire routes on an authenticated group
func (h *TireHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/alerts", h.GetAlerts)
	g.GET("/statistics", h.GetStatistics)
	g.GET("/:id", h.GetByID)
	g.POST("/:id/events", h.RegisterEvent)

	admin := g.Group("", middleware.RequireRoles(constants.RoleAdmin))
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Deactivate)
}

// Create registers a new tire with its installation event
func (h *TireHandler) Create(c echo.Context) error {
	var tire models.Tire
	if err := c.Bind(&tire); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	created, err := h.tireUC.Create(c.Request().Context(), &tire)
	if err != nil {
		logger.Warn("Failed to create tire",
			logger.String("code", tire.Code),
			logger.Err(err))
		return utils.AppErrorResponse(c, err, "Failed to create tire")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Tire created successfully", created)
}

// List returns tires matching the optional truck, status and active filters
func (h *TireHandler) List(c echo.Context) error {
	filter := &models.TireFilter{Status: c.QueryParam("status")}

	if raw := c.QueryParam("truck_id"); raw != "" {
		truckID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid truck ID")
		}
		filter.TruckID = &truckID
	}
	if raw := c.QueryParam("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	list, err := h.tireUC.List(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list tires")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tires retrieved successfully", list)
}

// GetByID returns a tire with its event history and usage statistics
func (h *TireHandler) GetByID(c echo.Context) error {
	tireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tire ID")
	}

	detail, err := h.tireUC.GetByID(c.Request().Context(), tireID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get tire")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tire retrieved successfully", detail)
}

// Update persists an admin correction to a tire
func (h *TireHandler) Update(c echo.Context) error {
	tireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tire ID")
	}

	var tire models.Tire
	if err := c.Bind(&tire); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	tire.ID = tireID

	updated, err := h.tireUC.Update(c.Request().Context(), &tire)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to update tire")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tire updated successfully", updated)
}

// RegisterEvent appends a lifecycle event to a tire
func (h *TireHandler) RegisterEvent(c echo.Context) error {
	tireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tire ID")
	}

	var req models.TireEventRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	event, err := h.tireUC.RegisterEvent(c.Request().Context(), tireID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to register tire event")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Tire event registered successfully", event)
}

// GetAlerts derives maintenance alerts for all active tires
func (h *TireHandler) GetAlerts(c echo.Context) error {
	alerts, err := h.tireUC.GetAlerts(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get tire alerts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tire alerts retrieved successfully", alerts)
}

// GetStatistics aggregates fleet-wide tire numbers
func (h *TireHandler) GetStatistics(c echo.Context) error {
	stats, err := h.tireUC.GetStatistics(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get tire statistics")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tire statistics retrieved successfully", stats)
}

// Deactivate discards a tire
func (h *TireHandler) Deactivate(c echo.Context) error {
	tireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tire ID")
	}

	if err := h.tireUC.Deactivate(c.Request().Context(), tireID); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to deactivate tire")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tire deactivated successfully", nil)
}
