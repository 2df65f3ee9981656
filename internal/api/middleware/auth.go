package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/booking-system/internal/core/ports"
)

// Context keys set by Auth when a valid bearer token is presented.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth attempts to decode a bearer token on every request and injects the
// verified identity into the context. It never aborts the request: a missing
// or invalid token simply leaves the caller unauthenticated, and downstream
// gates (RequireAuth, RBAC) decide whether that matters.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			if identity, ok := tokens.Validate(parts[1]); ok {
				c.Set(CtxUserID, identity.UserID)
				c.Set(CtxUsername, identity.Username)
				c.Set(CtxRole, identity.Role)
			}

			return next(c)
		}
	}
}

// RequireAuth rejects requests that carry no verified identity.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
