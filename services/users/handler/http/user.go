package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/middleware"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/gstransportes/frota/services/users"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// RegisterRoutes registers the authenticated user routes
func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/me", h.GetProfile)
	g.PUT("/me", h.UpdateProfile)

	admin := g.Group("", middleware.RequireRoles(constants.RoleAdmin))
	admin.GET("", h.List)
	admin.POST("", h.Create)
	admin.DELETE("/:id", h.Deactivate)
}

// GetProfile returns the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to get profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile updates the authenticated user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// List returns all users
func (h *UserHandler) List(c echo.Context) error {
	list, err := h.userUC.List(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list users", logger.Err(err))
		return utils.AppErrorResponse(c, err, "Failed to list users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", list)
}

// Create registers a new user on behalf of an administrator
func (h *UserHandler) Create(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to create user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", user)
}

// Deactivate marks a user inactive
func (h *UserHandler) Deactivate(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userUC.Deactivate(c.Request().Context(), userID); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to deactivate user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User deactivated successfully", nil)
}
