package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kejaplug/rental-api/internal/core/ports"
)

// ctxActor extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both id and role
// must be present, since their presence proves the middleware ran.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Actor{ID: userID, Role: role}, nil
}
