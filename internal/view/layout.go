package view

import "github.com/newthinker/boxoffice/internal/core"

// Tab IDs
const (
	TabTrends = "tab1"
	TabTotals = "tab2"
	TabYearly = "tab3"

	DefaultTab = TabTrends
)

// DashboardTitle is the page heading
const DashboardTitle = "Movie Industry Box Office Analysis"

// Tab describes one dashboard tab and the panel it reveals
type Tab struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Panel      string   `json:"panel"`
	Views      []string `json:"views"`
	GenreInput bool     `json:"genreInput"`
}

var tabs = []Tab{
	{
		ID:    TabTrends,
		Label: "Genre Trends Over Time",
		Panel: "genre-trends",
		Views: []string{ViewLine, ViewSummary},
	},
	{
		ID:         TabTotals,
		Label:      "Total Genre Revenue Comparison",
		Panel:      "total-revenue",
		Views:      []string{ViewTotalBars},
		GenreInput: true,
	},
	{
		ID:         TabYearly,
		Label:      "Yearly Genre Comparison",
		Panel:      "yearly-revenue",
		Views:      []string{ViewYearlyBars, ViewYearlySummary},
		GenreInput: true,
	},
}

// Tabs returns the dashboard tabs in display order
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// PanelState tells the shell whether a panel is shown
type PanelState struct {
	Panel   string `json:"panel"`
	Visible bool   `json:"visible"`
}

// Layout returns panel visibility for the selected tab. Only the
// selected tab's panel is visible; an unknown tab shows nothing.
func Layout(tab string) []PanelState {
	out := make([]PanelState, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, PanelState{Panel: t.Panel, Visible: t.ID == tab})
	}
	return out
}

// Slider describes a year range slider
type Slider struct {
	Min   int            `json:"min"`
	Max   int            `json:"max"`
	Step  int            `json:"step"`
	Value core.YearRange `json:"value"`
	Marks []int          `json:"marks"`
}

// Controls is everything the shell needs to draw its inputs
type Controls struct {
	Title      string   `json:"title"`
	Tabs       []Tab    `json:"tabs"`
	DefaultTab string   `json:"defaultTab"`
	Slider     Slider   `json:"slider"`
	Genres     []string `json:"genres"`
}

// Controls builds the control description. Slider marks are placed every
// markStep years starting at the first year; markStep < 1 means 5.
func (b *Base) Controls(markStep int) Controls {
	if markStep < 1 {
		markStep = 5
	}
	years := b.Years()

	marks := make([]int, 0)
	if b.table.Len() > 0 {
		for y := years.Min; y <= years.Max; y += markStep {
			marks = append(marks, y)
		}
	}

	return Controls{
		Title:      DashboardTitle,
		Tabs:       Tabs(),
		DefaultTab: DefaultTab,
		Slider: Slider{
			Min:   years.Min,
			Max:   years.Max,
			Step:  1,
			Value: years,
			Marks: marks,
		},
		Genres: b.Genres(),
	}
}
