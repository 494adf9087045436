// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	"dogber/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextUserID is the echo context key holding the authenticated uid.
const ContextUserID = "userID"

// AuthMiddleware resolves the acting user from a provider-issued bearer token.
// Sign-in and sign-up never pass through here; the provider owns them.
type AuthMiddleware struct {
	authSvc service.AuthService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authSvc service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// Authenticate validates the bearer token and stores the uid on the context.
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

		uid, err := m.authSvc.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextUserID, uid)

		return next(c)
	}
}
