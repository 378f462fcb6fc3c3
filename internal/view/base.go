package view

import (
	"github.com/newthinker/boxoffice/internal/aggregate"
	"github.com/newthinker/boxoffice/internal/core"
)

var palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Base is the read-only state every handler renders from. It is built
// once at startup and shared by all requests.
type Base struct {
	table  *aggregate.Table
	colors map[string]string
}

// NewBase wraps an aggregate table
func NewBase(table *aggregate.Table) *Base {
	genres := table.Genres()
	colors := make(map[string]string, len(genres))
	for i, g := range genres {
		colors[g] = palette[i%len(palette)]
	}
	return &Base{table: table, colors: colors}
}

// Genres returns the genre dropdown options
func (b *Base) Genres() []string { return b.table.Genres() }

// Years returns the full year range of the dataset
func (b *Base) Years() core.YearRange { return b.table.Years() }

// DefaultSnapshot selects the first tab, the whole year range and every genre
func (b *Base) DefaultSnapshot() Snapshot {
	return Snapshot{Tab: DefaultTab, Years: b.Years()}
}

func (b *Base) color(genre string) string {
	return b.colors[genre]
}

func (b *Base) inRange(snap Snapshot) []core.GenreYear {
	return b.table.FilterByYearRange(snap.Years.Min, snap.Years.Max)
}
