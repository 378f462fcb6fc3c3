// internal/api/handler/web/handler.go
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/newthinker/boxoffice/internal/view"
)

//go:embed templates/*
var templateFS embed.FS

// pages lists the page templates, each rendered inside layout.html
var pages = []string{"dashboard.html"}

// ControlsProvider provides the dashboard controls
type ControlsProvider interface {
	Controls() (view.Controls, error)
}

// Handler provides web UI handlers with template rendering
type Handler struct {
	// pageTemplates holds one template set per page: layout.html + the page
	pageTemplates map[string]*template.Template
	controls      ControlsProvider
}

// NewHandler creates a new web handler with templates loaded from the given directory.
// If templatesDir is empty, it falls back to embedded templates.
func NewHandler(templatesDir string, controls ControlsProvider) (*Handler, error) {
	if templatesDir != "" {
		pageTemplates := make(map[string]*template.Template)
		for _, page := range pages {
			layoutPath := filepath.Join(templatesDir, "layout.html")
			pagePath := filepath.Join(templatesDir, page)
			tmpl, err := template.New("layout.html").Funcs(funcs).ParseFiles(layoutPath, pagePath)
			if err != nil {
				return nil, fmt.Errorf("parsing template %s: %w", page, err)
			}
			pageTemplates[page] = tmpl
		}
		return &Handler{pageTemplates: pageTemplates, controls: controls}, nil
	}

	subFS, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("accessing embedded templates: %w", err)
	}
	return NewHandlerWithFS(subFS, controls)
}

// NewHandlerWithFS creates a new web handler using a custom filesystem.
// This is useful for testing or custom template sources.
func NewHandlerWithFS(fsys fs.FS, controls ControlsProvider) (*Handler, error) {
	pageTemplates := make(map[string]*template.Template)

	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(fsys, "layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s from fs: %w", page, err)
		}
		pageTemplates[page] = tmpl
	}

	return &Handler{pageTemplates: pageTemplates, controls: controls}, nil
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// render executes the specified page template with the given data
func (h *Handler) render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := h.pageTemplates[page]
	if !ok {
		http.Error(w, "template not found: "+page, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
