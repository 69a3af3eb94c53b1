package layout

import (
	"html/template"
	"io"

	"povdash/internal/models"
)

// Page is everything the page template needs.
type Page struct {
	Title     string
	Root      *Component
	Callbacks []models.CallbackSpec
}

var pageTemplate = template.Must(template.New("layout").Parse(tmplPage + tmplNode))

// RenderPage writes the full HTML document for p.
func RenderPage(w io.Writer, p Page) error {
	return pageTemplate.ExecuteTemplate(w, "page", p)
}
