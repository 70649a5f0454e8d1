// Package view renders the HTML pages.  Templates are embedded in the
// binary and parsed once at startup; handlers pick a page by template name
// and pass a data struct.  Presentation only — no business decisions live
// here.
package view

import (
    "embed"
    "html/template"
    "io"

    "github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Static holds the stylesheet and image assets served under /static.
//
//go:embed static
var Static embed.FS

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
    templates *template.Template
}

// NewRenderer parses the embedded templates.  Panics on a broken template,
// which is a build defect, not a runtime condition.
func NewRenderer() *Renderer {
    return &Renderer{
        templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
    }
}

// Render writes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
    return r.templates.ExecuteTemplate(w, name, data)
}
