package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/filestore"
	"github.com/gstransportes/frota/internal/pkg/middleware"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/gstransportes/frota/services/checklists"
	"github.com/labstack/echo/v4"
)

// ChecklistHandler handles HTTP requests for daily checklist operations
type ChecklistHandler struct {
	checklistUC checklists.ChecklistUC
	store       *filestore.LocalStore
}

// NewChecklistHandler creates a new checklist handler
func NewChecklistHandler(checklistUC checklists.ChecklistUC, store *filestore.LocalStore) *ChecklistHandler {
	return &ChecklistHandler{
		checklistUC: checklistUC,
		store:       store,
	}
}

// RegisterRoutes registers the checklist routes on an authenticated group
func (h *ChecklistHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Submit, middleware.RequireRoles(constants.RoleDriver))
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.POST("/photos", h.UploadPhoto)
}

// Submit records the authenticated driver's daily checklist
func (h *ChecklistHandler) Submit(c echo.Context) error {
	driverID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ChecklistRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	checklist, err := h.checklistUC.Submit(c.Request().Context(), driverID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to submit checklist")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Checklist submitted successfully", checklist)
}

// List returns checklists. Drivers only ever see their own submissions,
// regardless of the filters they pass.
func (h *ChecklistHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := c.Get(middleware.ContextRole).(string)

	filter := &models.ChecklistFilter{}

	if raw := c.QueryParam("truck_id"); raw != "" {
		truckID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid truck ID")
		}
		filter.TruckID = &truckID
	}
	if raw := c.QueryParam("driver_id"); raw != "" {
		driverID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid driver ID")
		}
		filter.DriverID = &driverID
	}
	if raw := c.QueryParam("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid start date")
		}
		filter.StartDate = &start
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid end date")
		}
		filter.EndDate = &end
	}

	if role == constants.RoleDriver {
		filter.DriverID = &userID
	}

	list, err := h.checklistUC.List(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list checklists")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Checklists retrieved successfully", list)
}

// GetByID retrieves a single checklist. Drivers can only read their own.
func (h *ChecklistHandler) GetByID(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := c.Get(middleware.ContextRole).(string)

	checklistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid checklist ID")
	}

	checklist, err := h.checklistUC.GetByID(c.Request().Context(), checklistID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get checklist")
	}

	if role == constants.RoleDriver && checklist.DriverID != userID {
		return utils.ForbiddenResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Checklist retrieved successfully", checklist)
}

// UploadPhoto stores a checklist photo and returns its URL
func (h *ChecklistHandler) UploadPhoto(c echo.Context) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return utils.BadRequestResponse(c, "photo file is required")
	}

	url, err := h.store.Save("checklists", file)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to upload photo")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Photo uploaded successfully", map[string]string{"url": url})
}
