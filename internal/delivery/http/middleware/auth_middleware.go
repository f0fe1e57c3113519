// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"strings"

	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyUserID   = "userID"
	KeyUsername = "username"
)

// AuthMiddleware validates bearer tokens and stamps the caller's identity
// onto the request context.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer token. On success the
// numeric user ID and username become available via c.Get.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		userID, username, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(KeyUserID, userID)
		c.Set(KeyUsername, username)

		return next(c)
	}
}

// UserID extracts the authenticated user's ID set by Authenticate. The
// boolean is false on routes that skipped the middleware.
func UserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(KeyUserID).(uint)

	return userID, ok
}
