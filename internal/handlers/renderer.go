package handlers

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/gin-gonic/gin/render"
)

// HTMLRenderer keeps one template set per page so every page can share the
// base layout without name collisions.
type HTMLRenderer struct {
	Templates map[string]*template.Template
}

// Instance returns the render for one page set.
func (r *HTMLRenderer) Instance(name string, data interface{}) render.Render {
	return render.HTML{
		Template: r.Templates[name],
		Data:     data,
	}
}

// pageFiles lists the template set of every page, each paired with the base
// layout.
var pageFiles = map[string][]string{
	"home.html":            {"home.html", "base.html"},
	"services.html":        {"services.html", "base.html"},
	"category_detail.html": {"category_detail.html", "base.html"},
	"product_detail.html":  {"product_detail.html", "base.html"},
	"contact.html":         {"contact.html", "base.html"},
	"404.html":             {"404.html", "base.html"},
}

// LoadTemplates parses a template set per page from dir.
func LoadTemplates(dir string) (*HTMLRenderer, error) {
	templates := map[string]*template.Template{}
	for name, files := range pageFiles {
		paths := make([]string, 0, len(files))
		for _, f := range files {
			paths = append(paths, filepath.Join(dir, f))
		}
		tmpl, err := template.ParseFiles(paths...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &HTMLRenderer{Templates: templates}, nil
}
