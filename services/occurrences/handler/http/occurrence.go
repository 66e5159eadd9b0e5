package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/filestore"
	"github.com/gstransportes/frota/internal/pkg/middleware"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/gstransportes/frota/services/occurrences"
	"github.com/labstack/echo/v4"
)

// OccurrenceHandler handles HTTP requests for occurrence operations
type OccurrenceHandler struct {
	occurrenceUC occurrences.OccurrenceUC
	store        *filestore.LocalStore
}

// NewOccurrenceHandler creates a new occurrence handler
func NewOccurrenceHandler(occurrenceUC occurrences.OccurrenceUC, store *filestore.LocalStore) *OccurrenceHandler {
	return &OccurrenceHandler{
		occurrenceUC: occurrenceUC,
		store:        store,
	}
}

// RegisterRoutes registers the occurrence routes on an authenticated group
func (h *OccurrenceHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Create, middleware.RequireRoles(constants.RoleDriver))
	g.GET("", h.List)
	g.GET("/statistics", h.GetStatistics, middleware.RequireRoles(constants.RoleAdmin, constants.RoleFinance))
	g.GET("/:id", h.GetByID)
	g.PUT("/:id/status", h.UpdateStatus, middleware.RequireRoles(constants.RoleAdmin, constants.RoleFinance))
	g.POST("/photos", h.UploadPhoto)
}

// Create files a new occurrence for the authenticated driver
func (h *OccurrenceHandler) Create(c echo.Context) error {
	driverID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.OccurrenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	occurrence, err := h.occurrenceUC.Create(c.Request().Context(), driverID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to create occurrence")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Occurrence created successfully", occurrence)
}

// List returns occurrences. Drivers only ever see their own reports.
func (h *OccurrenceHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := c.Get(middleware.ContextRole).(string)

	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if role == constants.RoleDriver {
		filter.DriverID = &userID
	}

	list, err := h.occurrenceUC.List(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list occurrences")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Occurrences retrieved successfully", list)
}

// GetByID retrieves a single occurrence. Drivers can only read their own.
func (h *OccurrenceHandler) GetByID(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := c.Get(middleware.ContextRole).(string)

	occurrenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid occurrence ID")
	}

	occurrence, err := h.occurrenceUC.GetByID(c.Request().Context(), occurrenceID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get occurrence")
	}

	if role == constants.RoleDriver && occurrence.DriverID != userID {
		return utils.ForbiddenResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Occurrence retrieved successfully", occurrence)
}

// UpdateStatus moves an occurrence through the triage workflow
func (h *OccurrenceHandler) UpdateStatus(c echo.Context) error {
	occurrenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid occurrence ID")
	}

	var req models.OccurrenceStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	occurrence, err := h.occurrenceUC.UpdateStatus(c.Request().Context(), occurrenceID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to update occurrence status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Occurrence status updated successfully", occurrence)
}

// GetStatistics aggregates the filtered occurrence set
func (h *OccurrenceHandler) GetStatistics(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	stats, err := h.occurrenceUC.GetStatistics(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get occurrence statistics")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Occurrence statistics retrieved successfully", stats)
}

// UploadPhoto stores an occurrence photo and returns its URL
func (h *OccurrenceHandler) UploadPhoto(c echo.Context) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return utils.BadRequestResponse(c, "photo file is required")
	}

	url, err := h.store.Save("occurrences", file)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to upload photo")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Photo uploaded successfully", map[string]string{"url": url})
}

func parseFilter(c echo.Context) (*models.OccurrenceFilter, error) {
	filter := &models.OccurrenceFilter{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
	}

	if raw := c.QueryParam("truck_id"); raw != "" {
		truckID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("Invalid truck ID")
		}
		filter.TruckID = &truckID
	}
	if raw := c.QueryParam("driver_id"); raw != "" {
		driverID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("Invalid driver ID")
		}
		filter.DriverID = &driverID
	}
	if raw := c.QueryParam("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, errors.New("Invalid start date")
		}
		filter.StartDate = &start
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, errors.New("Invalid end date")
		}
		filter.EndDate = &end
	}

	return filter, nil
}
