package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/newthinker/boxoffice/internal/core"
	"github.com/newthinker/boxoffice/internal/view"
)

type stubControls struct {
	ctrl view.Controls
	err  error
}

func (s stubControls) Controls() (view.Controls, error) { return s.ctrl, s.err }

func testControls() view.Controls {
	return view.Controls{
		Title:      view.DashboardTitle,
		Tabs:       view.Tabs(),
		DefaultTab: view.DefaultTab,
		Slider: view.Slider{
			Min:   2000,
			Max:   2010,
			Step:  1,
			Value: core.YearRange{Min: 2000, Max: 2010},
			Marks: []int{2000, 2005, 2010},
		},
		Genres: []string{"Action", "Comedy"},
	}
}

func TestNewHandler_Embedded(t *testing.T) {
	h, err := NewHandler("", stubControls{ctrl: testControls()})
	if err != nil {
		t.Fatalf("failed to create handler: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	h.Dashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		view.DashboardTitle,
		"Genre Trends Over Time",
		`id="total-revenue"`,
		`data-views="yearly-bars,yearly-summary"`,
		`<option value="Comedy">Comedy</option>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestNewHandler_PerTabControls(t *testing.T) {
	h, err := NewHandler("", stubControls{ctrl: testControls()})
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	h.Dashboard(w, httptest.NewRequest("GET", "/", nil))
	body := w.Body.String()

	for _, tab := range view.Tabs() {
		for _, id := range []string{"year-min-" + tab.ID, "year-max-" + tab.ID, "year-label-" + tab.ID} {
			if n := strings.Count(body, `id="`+id+`"`); n != 1 {
				t.Errorf("expected one %s, got %d", id, n)
			}
		}

		genres := `id="genres-` + tab.ID + `"`
		if tab.GenreInput && !strings.Contains(body, genres) {
			t.Errorf("tab %s should have its own genre input", tab.ID)
		}
		if !tab.GenreInput && strings.Contains(body, genres) {
			t.Errorf("tab %s should not have a genre input", tab.ID)
		}
	}

	// One option per genre per genre-input tab
	if n := strings.Count(body, `<option value="Action">`); n != 2 {
		t.Errorf("expected Action in two genre inputs, got %d", n)
	}
	if strings.Contains(body, `id="year-min"`) || strings.Contains(body, `id="genres"`) {
		t.Error("controls must not be shared across tabs")
	}
}

func TestNewHandler_TableCellsAreText(t *testing.T) {
	h, err := NewHandler("", stubControls{ctrl: testControls()})
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	h.Dashboard(w, httptest.NewRequest("GET", "/", nil))
	body := w.Body.String()

	if strings.Contains(body, "innerHTML") {
		t.Error("dashboard script must not build markup from response data")
	}
	if !strings.Contains(body, "el.textContent = text") {
		t.Error("expected table cells to be filled through textContent")
	}
}

func TestHandler_DatasetUnavailable(t *testing.T) {
	h, err := NewHandler("", stubControls{err: core.WrapError(core.ErrNoData, errors.New("dataset not loaded"))})
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	h.Dashboard(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `id="load-error"`) {
		t.Error("expected error banner")
	}
}

func TestHandler_UnknownPath(t *testing.T) {
	h, err := NewHandler("", stubControls{ctrl: testControls()})
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	h.Dashboard(w, httptest.NewRequest("GET", "/favicon.ico", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestNewHandlerWithFS(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html":    {Data: []byte(`<title>{{.Title}}</title>{{template "content" .}}`)},
		"dashboard.html": {Data: []byte(`{{define "content"}}{{join .Controls.Genres "|"}}{{end}}`)},
	}

	h, err := NewHandlerWithFS(fsys, stubControls{ctrl: testControls()})
	if err != nil {
		t.Fatalf("failed to create handler: %v", err)
	}

	w := httptest.NewRecorder()
	h.Dashboard(w, httptest.NewRequest("GET", "/", nil))

	if !strings.Contains(w.Body.String(), "Action|Comedy") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestNewHandlerWithFS_MissingPage(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html": {Data: []byte(`{{template "content" .}}`)},
	}

	if _, err := NewHandlerWithFS(fsys, stubControls{}); err == nil {
		t.Error("expected error for missing page template")
	}
}
