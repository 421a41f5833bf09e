// Package render implements echo's Renderer on top of html/template.
package render

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Renderer renders named HTML templates parsed from a glob at startup.
type Renderer struct {
	templates *template.Template
}

// New parses all templates matching the glob.
func New(glob string) (*Renderer, error) {
	templates, err := template.ParseGlob(glob)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse templates from %s", glob)
	}

	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.Wrapf(r.templates.ExecuteTemplate(w, name, data), "failed to render %s", name)
}
