package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{
	"index",
	"hakkimizda",
	"iletisim",
	"cart",
	"product",
	"checkout",
	"order_success",
	"success",
}

// Renderer holds the parsed page templates, each combined with the
// shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	const op = "render.New"

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(templatesFS,
			"templates/layout.html",
			fmt.Sprintf("templates/%s.html", page),
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{
		templates: templates,
	}, nil
}

// Render writes the named page to w with the given data.
func (r *Renderer) Render(w http.ResponseWriter, page string, data any) error {
	const op = "render.Render"

	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("%s: unknown page %q", op, page)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
