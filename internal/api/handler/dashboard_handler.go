package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/jobtrack/internal/core/ports"
)

// DashboardHandler serves the landing page and the dashboard.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Landing handles GET /.
func (h *DashboardHandler) Landing(c echo.Context) error {
	_, username, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "landing.html", map[string]any{"Username": username})
}

// Home handles GET /home, the dashboard with aggregate counts.
func (h *DashboardHandler) Home(c echo.Context) error {
	userID, username, err := ctxSession(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboard.Summary(c.Request().Context(), userID, time.Now())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "home.html", map[string]any{
		"Username": username,
		"Summary":  summary,
	})
}
