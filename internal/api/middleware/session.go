package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/jobtrack/internal/core/domain"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "jobtrack_session"

// SessionResolver is the slice of the auth service the middleware needs.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// Session authenticates the request from the session cookie and injects
// user_id and username into the Echo context. Browser routes are redirected
// to the login page on failure; /api routes get a 401 JSON error instead.
func Session(auth SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return reject(c)
			}

			session, err := auth.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return reject(c)
			}

			c.Set("user_id", session.UserID)
			c.Set("username", session.Username)
			return next(c)
		}
	}
}

func reject(c echo.Context) error {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.Redirect(http.StatusFound, "/login")
}
