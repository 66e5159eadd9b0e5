package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/middleware"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/gstransportes/frota/services/trucks"
	"github.com/labstack/echo/v4"
)

// TruckHandler handles HTTP requests for truck operations
type TruckHandler struct {
	truckUC trucks.TruckUC
}

// NewTruckHandler creates a new truck handler
func NewTruckHandler(truckUC trucks.TruckUC) *TruckHandler {
	return &TruckHandler{truckUC: truckUC}
}

// RegisterRoutes registers the truck routes on an authenticated group
func (h *TruckHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/available", h.ListAvailable)
	g.GET("/:id", h.GetByID)
	g.GET("/:id/history", h.History)

	g.POST("/select", h.SelectTruck, middleware.RequireRoles(constants.RoleDriver))
	g.POST("/:id/release", h.ReleaseTruck, middleware.RequireRoles(constants.RoleDriver))

	admin := g.Group("", middleware.RequireRoles(constants.RoleAdmin))
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.PUT("/:id/assign", h.AssignDriver)
	admin.DELETE("/:id", h.Deactivate)
}

// Create registers a new truck
func (h *TruckHandler) Create(c echo.Context) error {
	var truck models.Truck
	if err := c.Bind(&truck); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	created, err := h.truckUC.Create(c.Request().Context(), &truck)
	if err != nil {
		logger.Warn("Failed to create truck",
			logger.String("plate", truck.Plate),
			logger.Err(err))
		return utils.AppErrorResponse(c, err, "Failed to create truck")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Truck created successfully", created)
}

// List returns trucks matching the optional status and active filters
func (h *TruckHandler) List(c echo.Context) error {
	filter := &models.TruckFilter{Status: c.QueryParam("status")}
	if raw := c.QueryParam("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	list, err := h.truckUC.List(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list trucks")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trucks retrieved successfully", list)
}

// ListAvailable returns active trucks without a current driver
func (h *TruckHandler) ListAvailable(c echo.Context) error {
	list, err := h.truckUC.ListAvailable(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list available trucks")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Available trucks retrieved successfully", list)
}

// GetByID returns a truck with tires and recent activity
func (h *TruckHandler) GetByID(c echo.Context) error {
	truckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	detail, err := h.truckUC.GetByID(c.Request().Context(), truckID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get truck")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck retrieved successfully", detail)
}

// Update persists an admin correction to a truck
func (h *TruckHandler) Update(c echo.Context) error {
	truckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	var truck models.Truck
	if err := c.Bind(&truck); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	truck.ID = truckID

	updated, err := h.truckUC.Update(c.Request().Context(), &truck)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to update truck")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck updated successfully", updated)
}

// SelectTruck lets the authenticated driver claim an available truck
func (h *TruckHandler) SelectTruck(c echo.Context) error {
	driverID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SelectTruckRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.TruckID == uuid.Nil {
		return utils.BadRequestResponse(c, "truck_id is required")
	}

	truck, err := h.truckUC.SelectTruck(c.Request().Context(), driverID, req.TruckID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to select truck")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck selected successfully", truck)
}

// ReleaseTruck lets the authenticated driver give up the truck they hold
func (h *TruckHandler) ReleaseTruck(c echo.Context) error {
	driverID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	truckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	if err := h.truckUC.ReleaseTruck(c.Request().Context(), driverID, truckID); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to release truck")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck released successfully", nil)
}

// AssignDriver assigns or unassigns a driver on behalf of an administrator
func (h *TruckHandler) AssignDriver(c echo.Context) error {
	truckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	var req models.AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	truck, err := h.truckUC.AssignDriver(c.Request().Context(), truckID, req.DriverID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to assign driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver assignment updated successfully", truck)
}

// Deactivate retires a truck from the fleet
func (h *TruckHandler) Deactivate(c echo.Context) error {
	truckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	if err := h.truckUC.Deactivate(c.Request().Context(), truckID); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to deactivate truck")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck deactivated successfully", nil)
}

// History returns the truck's assignment history
func (h *TruckHandler) History(c echo.Context) error {
	truckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	history, err := h.truckUC.History(c.Request().Context(), truckID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get truck history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck history retrieved successfully", history)
}
