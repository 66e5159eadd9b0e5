package middleware

import (
	"strings"

	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/gstransportes/frota/internal/pkg/jwt"
)

// Context keys set by the JWT middleware
const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, err := jwtpkg.UserIDFromClaims(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"].(string)
			if !ok || role == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}

// RequireRoles creates a middleware that allows only the given roles.
// It must run after JWTAuthMiddleware.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(string)
			if !ok || !allowed[role] {
				return utils.ForbiddenResponse(c, "Access denied")
			}
			return next(c)
		}
	}
}
