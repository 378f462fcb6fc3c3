package view

import (
	"fmt"

	"github.com/newthinker/boxoffice/internal/aggregate"
	"github.com/newthinker/boxoffice/internal/core"
)

// Summary table column IDs
const (
	ColGenre         = "genre"
	ColStartRevenue  = "start_revenue"
	ColEndRevenue    = "end_revenue"
	ColPercentChange = "percent_change"
)

var summaryColumns = []Column{
	{ID: ColGenre, Name: "Genre"},
	{ID: ColStartRevenue, Name: "Start Revenue"},
	{ID: ColEndRevenue, Name: "End Revenue"},
	{ID: ColPercentChange, Name: "Percent Change (%)"},
}

// SummaryTable renders the percent change of every genre between the first
// and last selected year. The genre selection does not apply to this view.
func SummaryTable(base *Base, snap Snapshot) Descriptor {
	return summary(ViewSummary, base.inRange(snap), snap.Years)
}

// YearlySummaryTable is SummaryTable restricted to the selected genres
func YearlySummaryTable(base *Base, snap Snapshot) Descriptor {
	rows := aggregate.FilterByGenres(base.inRange(snap), snap.Genres)
	return summary(ViewYearlySummary, rows, snap.Years)
}

// SummaryTitle is the heading shown above a summary table
func SummaryTitle(years core.YearRange) string {
	return fmt.Sprintf("Percent Change in Domestic Box Office Revenue by Genre (%d - %d)", years.Min, years.Max)
}

func summary(name string, rows []core.GenreYear, years core.YearRange) Descriptor {
	title := SummaryTitle(years)
	summaryRows := aggregate.PercentChangeByGenre(rows, years.Min, years.Max)

	columns := make([]Column, len(summaryColumns))
	copy(columns, summaryColumns)

	return Descriptor{
		View:  name,
		Kind:  KindTable,
		Title: title,
		Table: &TableData{
			Title:   title,
			Columns: columns,
			Rows:    FormatSummaryRows(summaryRows),
		},
	}
}

// FormatSummaryRows converts summary rows into display strings keyed by column ID
func FormatSummaryRows(rows []core.SummaryRow) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, map[string]string{
			ColGenre:         r.Genre,
			ColStartRevenue:  FormatRevenue(r.StartRevenue),
			ColEndRevenue:    FormatRevenue(r.EndRevenue),
			ColPercentChange: FormatPercent(r.PercentChange),
		})
	}
	return out
}
