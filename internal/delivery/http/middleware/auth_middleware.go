package middleware

import (
	"net/http"
	"strings"

	"accounts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that resolves the caller from
// the bearer token and stores the user id on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// Let the error middleware map TOKEN_EXPIRED / TOKEN_INVALID.
			return err
		}

		c.Set("userID", userID)

		return next(c)
	}
}
