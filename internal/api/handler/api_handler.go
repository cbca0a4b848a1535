package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/jobtrack/internal/core/domain"
	"github.com/jobtrack/jobtrack/internal/core/ports"
)

// APIHandler serves the read-only JSON API. Authentication is the same
// session cookie as the browser routes; failures get a 401 instead of a
// redirect.
type APIHandler struct {
	apps      ports.ApplicationService
	dashboard ports.DashboardService
}

func NewAPIHandler(apps ports.ApplicationService, dashboard ports.DashboardService) *APIHandler {
	return &APIHandler{apps: apps, dashboard: dashboard}
}

// ListApplications handles GET /api/v1/applications.
//
// @Summary      List the caller's job applications
// @Tags         applications
// @Produce      json
// @Param        status  query     string  false  "Filter by status label"  Enums(Applied, Interviewing, Offer, Rejected, Accepted)
// @Param        sort    query     string  false  "Applied-date order"      Enums(ascending, descending)
// @Success      200     {object}  listApplicationsResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /applications [get]
func (h *APIHandler) ListApplications(c echo.Context) error {
	userID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	sort := ports.SortNone
	switch c.QueryParam("sort") {
	case string(ports.SortAscending):
		sort = ports.SortAscending
	case string(ports.SortDescending):
		sort = ports.SortDescending
	}

	apps, err := h.apps.List(c.Request().Context(), userID, c.QueryParam("status"), sort)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(apps))
}

// GetSummary handles GET /api/v1/summary.
//
// @Summary      Dashboard counts for the caller
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  summaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /summary [get]
func (h *APIHandler) GetSummary(c echo.Context) error {
	userID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboard.Summary(c.Request().Context(), userID, time.Now())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summaryResponse{
		Total:        summary.Total,
		WeekCount:    summary.WeekCount,
		MonthCount:   summary.MonthCount,
		Accepted:     summary.Accepted,
		Interviewing: summary.Interviewing,
		Rejected:     summary.Rejected,
	})
}

func toListResponse(apps []*domain.Application) listApplicationsResponse {
	items := make([]applicationResponse, len(apps))
	for i, a := range apps {
		items[i] = applicationResponse{
			ID:          a.ID,
			Company:     a.Company,
			Role:        a.Role,
			Category:    a.Category,
			Location:    a.Location,
			Flexibility: a.Flexibility,
			Status:      string(a.Status),
			AppliedDate: a.AppliedDate,
			Link:        a.Link,
		}
	}
	return listApplicationsResponse{Data: items, Total: len(items)}
}
