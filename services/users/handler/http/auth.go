package http

import (
	"net/http"

	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/labstack/echo/v4"
)

// RegisterAuthRoutes registers the public authentication routes
func (h *UserHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.Refresh)
}

// Register creates a new account
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.AppErrorResponse(c, err, "Failed to register user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login authenticates a user and returns a token pair
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	auth, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to authenticate")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authenticated successfully", auth)
}

// Refresh exchanges a refresh token for a new token pair
func (h *UserHandler) Refresh(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	auth, err := h.userUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to refresh token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", auth)
}
