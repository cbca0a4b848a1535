package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSession extracts the identity injected by the session middleware and
// fast-fails before any service call: a missing user_id means the route was
// wired without the middleware, never a legitimate request.
func ctxSession(c echo.Context) (userID, username string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	username, _ = c.Get("username").(string)
	return userID, username, nil
}
