// Package render
package render

import (
	"embed"
	"fmt"
	"github.com/labstack/echo/v4"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Files starting with an underscore hold shared partials and are parsed into every page.
var sharedFiles = []string{"templates/layout.html", "templates/_*.html"}

var funcs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
	"money": func(value float64) string {
		return fmt.Sprintf("%.2f", value)
	},
	// percent is used for histogram bar widths
	"percent": func(value, total int64) int64 {
		if total <= 0 {
			return 0
		}
		return value * 100 / total
	},
}

// TemplateRenderer parses every page together with the layout and partials.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	renderer := &TemplateRenderer{templates: make(map[string]*template.Template)}
	for _, page := range pages {
		name := path.Base(page)
		if name == "layout.html" || strings.HasPrefix(name, "_") {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, append(sharedFiles, page)...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		renderer.templates[name] = t
	}
	return renderer, nil
}

func (renderer *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := renderer.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
