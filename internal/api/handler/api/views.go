// internal/api/handler/api/views.go
package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/newthinker/boxoffice/internal/api/response"
	"github.com/newthinker/boxoffice/internal/core"
	"github.com/newthinker/boxoffice/internal/view"
)

// ViewProvider renders views over the loaded dataset
type ViewProvider interface {
	Base() (*view.Base, error)
	Render(name string, snap view.Snapshot) (view.Descriptor, error)
	Controls() (view.Controls, error)
}

// ViewsHandler handles dashboard view requests.
type ViewsHandler struct {
	provider ViewProvider
}

// NewViewsHandler creates a new views handler.
func NewViewsHandler(provider ViewProvider) *ViewsHandler {
	return &ViewsHandler{provider: provider}
}

// Get renders the view named in the path for the snapshot in the query.
func (h *ViewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("view")
	if _, err := view.Lookup(name); err != nil {
		response.Fail(w, err)
		return
	}

	base, err := h.provider.Base()
	if err != nil {
		response.Fail(w, err)
		return
	}

	snap, err := ParseSnapshot(r.URL.Query(), base.DefaultSnapshot())
	if err != nil {
		response.Fail(w, err)
		return
	}

	desc, err := h.provider.Render(name, snap)
	if err != nil {
		response.Fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, desc)
}

// List returns the names of all views.
func (h *ViewsHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"views": view.Names(),
	})
}

// Layout returns panel visibility for the tab in the query.
func (h *ViewsHandler) Layout(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = view.DefaultTab
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"tab":    tab,
		"panels": view.Layout(tab),
	})
}

// Controls returns the tabs, slider and genre options.
func (h *ViewsHandler) Controls(w http.ResponseWriter, r *http.Request) {
	ctrl, err := h.provider.Controls()
	if err != nil {
		response.Fail(w, err)
		return
	}
	response.JSON(w, http.StatusOK, ctrl)
}

// ParseSnapshot reads a control snapshot from query parameters on top of
// defaults. Missing tab, min or max keep the default; each genre parameter
// names one genre verbatim, so genre names may contain commas.
func ParseSnapshot(q url.Values, defaults view.Snapshot) (view.Snapshot, error) {
	snap := view.Snapshot{
		Tab:   defaults.Tab,
		Years: defaults.Years,
	}
	if tab := q.Get("tab"); tab != "" {
		snap.Tab = tab
	}

	if v := q.Get("min"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return view.Snapshot{}, core.WrapError(core.ErrInvalidQuery, fmt.Errorf("min: %q is not a year", v))
		}
		snap.Years.Min = n
	}

	if v := q.Get("max"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return view.Snapshot{}, core.WrapError(core.ErrInvalidQuery, fmt.Errorf("max: %q is not a year", v))
		}
		snap.Years.Max = n
	}

	for _, g := range q["genre"] {
		if g != "" {
			snap.Genres = append(snap.Genres, g)
		}
	}

	return snap, nil
}
