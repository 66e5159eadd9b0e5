package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/middleware"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/gstransportes/frota/services/dashboard"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles HTTP requests for the role dashboards
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUC) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// RegisterRoutes registers the dashboard routes on an authenticated group
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/admin", h.AdminStats, middleware.RequireRoles(constants.RoleAdmin))
	g.GET("/driver", h.DriverStats, middleware.RequireRoles(constants.RoleDriver))
	g.GET("/financial", h.FinancialStats, middleware.RequireRoles(constants.RoleAdmin, constants.RoleFinance))
}

// AdminStats returns the fleet-wide dashboard
func (h *DashboardHandler) AdminStats(c echo.Context) error {
	stats, err := h.dashboardUC.AdminStats(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get admin dashboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", stats)
}

// DriverStats returns the signed-in driver's dashboard
func (h *DashboardHandler) DriverStats(c echo.Context) error {
	driverID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.dashboardUC.DriverStats(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get driver dashboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", stats)
}

// FinancialStats returns the spending dashboard for the given period
func (h *DashboardHandler) FinancialStats(c echo.Context) error {
	stats, err := h.dashboardUC.FinancialStats(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get financial dashboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", stats)
}
