package web

import (
	"net/http"

	"github.com/newthinker/boxoffice/internal/view"
)

// DashboardData holds data for the dashboard template
type DashboardData struct {
	Title    string
	Controls view.Controls
	Error    string
}

// Dashboard renders the dashboard shell. Charts and tables are filled in
// by the page script from the JSON API.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := DashboardData{Title: view.DashboardTitle}

	ctrl, err := h.controls.Controls()
	if err != nil {
		data.Error = err.Error()
		h.render(w, http.StatusServiceUnavailable, "dashboard.html", data)
		return
	}
	data.Controls = ctrl

	h.render(w, http.StatusOK, "dashboard.html", data)
}
