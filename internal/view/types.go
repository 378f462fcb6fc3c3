package view

import "github.com/newthinker/boxoffice/internal/core"

// Snapshot is the value of every dashboard control at the moment of an event
type Snapshot struct {
	Tab    string         `json:"tab,omitempty"`
	Years  core.YearRange `json:"years"`
	Genres []string       `json:"genres,omitempty"` // empty means all genres
}

// Descriptor kinds
const (
	KindChart = "chart"
	KindTable = "table"
)

// Chart types
const (
	ChartLine       = "line"
	ChartBar        = "bar"
	ChartGroupedBar = "grouped_bar"
)

// Descriptor is a render-ready description of one view. Exactly one of
// Chart and Table is set, according to Kind.
type Descriptor struct {
	View  string       `json:"view"`
	Kind  string       `json:"kind"`
	Title string       `json:"title"`
	Chart *ChartConfig `json:"chart,omitempty"`
	Table *TableData   `json:"table,omitempty"`
}

// ChartConfig describes a chart as categories and named series
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis"`
	YAxis      string        `json:"yAxis"`
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
}

// ChartSeries is one named line or bar colour
type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color,omitempty"`
	Points []ChartPoint `json:"points"`
}

// ChartPoint is a single value at a category label
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TableData holds display-ready rows keyed by column ID
type TableData struct {
	Title   string              `json:"title"`
	Columns []Column            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// Column identifies a table column
type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
