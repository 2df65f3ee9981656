package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/booking-system/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// non-empty role proves a verified token was presented; handlers behind
// RequireAuth can rely on it being set.
func ctxIdentity(c echo.Context) (userID uint, role string, err error) {
	role, _ = c.Get(middleware.CtxRole).(string)
	if role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get(middleware.CtxUserID).(uint)
	return userID, role, nil
}

// optionalIdentity returns the authenticated user id when present, nil for
// anonymous callers. Used on endpoints that accept guest traffic.
func optionalIdentity(c echo.Context) *uint {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return nil
	}
	if id, ok := c.Get(middleware.CtxUserID).(uint); ok {
		return &id
	}
	return nil
}
