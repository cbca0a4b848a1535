package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/jobtrack/internal/api/metrics"
	"github.com/jobtrack/jobtrack/internal/core/domain"
	"github.com/jobtrack/jobtrack/internal/core/ports"
)

// ApplicationHandler serves the add/track/edit/delete browser routes.
type ApplicationHandler struct {
	apps ports.ApplicationService
}

func NewApplicationHandler(apps ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// AddPage handles GET /addapplication.
func (h *ApplicationHandler) AddPage(c echo.Context) error {
	return c.Render(http.StatusOK, "application_form.html", map[string]any{
		"Title":       "Add application",
		"Action":      "/addapplication",
		"Statuses":    domain.Statuses,
		"Application": &domain.Application{Status: domain.StatusApplied},
	})
}

// Add handles POST /addapplication.
func (h *ApplicationHandler) Add(c echo.Context) error {
	userID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	form, renderErr := h.bindForm(c, "/addapplication", "Add application", "")
	if form == nil {
		return renderErr
	}

	app, err := h.apps.Create(c.Request().Context(), userID, toApplicationInput(*form))
	if err != nil {
		return err
	}

	metrics.ApplicationsCreatedTotal.WithLabelValues(string(app.Status)).Inc()
	return c.Redirect(http.StatusFound, "/track")
}

// Track handles GET and POST /track: the list with the search-bar filter.
// A status label filters; "ascending"/"descending" sort by applied date;
// the default view is newest first.
func (h *ApplicationHandler) Track(c echo.Context) error {
	userID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form trackForm
	if c.Request().Method == http.MethodPost {
		if err := c.Bind(&form); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
		}
	}

	status, sort := "", ports.SortNone
	switch form.Status {
	case "":
	case string(ports.SortAscending):
		sort = ports.SortAscending
	case string(ports.SortDescending):
		sort = ports.SortDescending
	default:
		status = form.Status
	}

	apps, err := h.apps.List(c.Request().Context(), userID, status, sort)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "track.html", map[string]any{
		"Applications": apps,
		"Statuses":     domain.Statuses,
	})
}

// EditPage handles GET /edit?id=..., the pre-filled edit form.
func (h *ApplicationHandler) EditPage(c echo.Context) error {
	userID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	app, err := h.apps.Get(c.Request().Context(), userID, c.QueryParam("id"))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "application_form.html", map[string]any{
		"Title":       "Edit application",
		"Action":      "/edit",
		"Statuses":    domain.Statuses,
		"Application": app,
	})
}

// Edit handles POST /edit.
func (h *ApplicationHandler) Edit(c echo.Context) error {
	userID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	id := c.FormValue("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing application id")
	}

	form, renderErr := h.bindForm(c, "/edit", "Edit application", id)
	if form == nil {
		return renderErr
	}

	if err := h.apps.Update(c.Request().Context(), userID, id, toApplicationInput(*form)); err != nil {
		return err
	}

	metrics.ApplicationsUpdatedTotal.Inc()
	return c.Redirect(http.StatusFound, "/track")
}

// Delete handles POST /delete.
func (h *ApplicationHandler) Delete(c echo.Context) error {
	userID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	id := c.FormValue("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing application id")
	}

	if err := h.apps.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	metrics.ApplicationsDeletedTotal.Inc()
	return c.Redirect(http.StatusFound, "/track")
}

// bindForm binds and validates the application form. On validation failure
// it re-renders the form inline (returning nil form and the render result).
func (h *ApplicationHandler) bindForm(c echo.Context, action, title, id string) (*applicationForm, error) {
	var form applicationForm
	if err := c.Bind(&form); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return nil, c.Render(http.StatusBadRequest, "application_form.html", map[string]any{
			"Title":       title,
			"Action":      action,
			"Statuses":    domain.Statuses,
			"Message":     err.Error(),
			"Application": formToApplication(form, id),
		})
	}
	return &form, nil
}

func toApplicationInput(form applicationForm) ports.ApplicationInput {
	return ports.ApplicationInput{
		Company:     form.Company,
		Role:        form.Role,
		Category:    form.Category,
		Location:    form.Location,
		Flexibility: form.Flexibility,
		Status:      form.Status,
		AppliedDate: form.AppliedDate,
		Link:        form.Link,
	}
}

// formToApplication rebuilds a record from submitted values so a rejected
// form comes back pre-filled.
func formToApplication(form applicationForm, id string) *domain.Application {
	return &domain.Application{
		ID:          id,
		Company:     form.Company,
		Role:        form.Role,
		Category:    form.Category,
		Location:    form.Location,
		Flexibility: form.Flexibility,
		Status:      domain.ApplicationStatus(form.Status),
		AppliedDate: form.AppliedDate,
		Link:        form.Link,
	}
}
