package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/jobtrack/internal/api/metrics"
	"github.com/jobtrack/jobtrack/internal/api/middleware"
	"github.com/jobtrack/jobtrack/internal/core/domain"
	"github.com/jobtrack/jobtrack/internal/core/ports"
)

// AuthHandler serves the login/signup/logout browser routes.
type AuthHandler struct {
	authService  ports.AuthService
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

// flashMessages maps redirect flash codes to the text shown on the form.
var flashMessages = map[string]string{
	"signup_ok":  "Account created successfully. Please log in.",
	"logged_out": "You have been logged out.",
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", map[string]any{
		"Message": flashMessages[c.QueryParam("flash")],
	})
}

// Login handles POST /login. Expected faults re-render the form inline;
// success sets the session cookie and redirects to the dashboard.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", map[string]any{"Message": err.Error()})
	}

	token, _, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.Render(http.StatusUnauthorized, "login.html", map[string]any{
				"Message": "Invalid username or password.",
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(h.sessionCookie(token, h.cookieTTL))
	return c.Redirect(http.StatusFound, "/home")
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", map[string]any{})
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "signup.html", map[string]any{"Message": err.Error()})
	}

	_, err := h.authService.Signup(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.Render(http.StatusConflict, "signup.html", map[string]any{
				"Message": "Username already exists. Please choose another.",
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Render(http.StatusBadRequest, "signup.html", map[string]any{
				"Message": "Username and password are required.",
			})
		}
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.Redirect(http.StatusFound, "/login?flash=signup_ok")
}

// Logout handles GET /logout. Destroys the session server-side, expires the
// cookie, and redirects to the login page. Idempotent without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.Redirect(http.StatusFound, "/login?flash=logged_out")
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
