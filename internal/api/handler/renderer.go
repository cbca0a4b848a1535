package handler

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/jobtrack/web"
)

// Renderer satisfies echo.Renderer over the embedded HTML templates.
// Templates are addressed by file name (e.g. "track.html").
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. Called once at startup.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
