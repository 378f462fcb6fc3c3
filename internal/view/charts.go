package view

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/newthinker/boxoffice/internal/aggregate"
	"github.com/newthinker/boxoffice/internal/core"
)

const (
	axisYear    = "Release Year"
	axisGenre   = "Genre"
	axisRevenue = "Revenue (USD)"
)

// LineSeries renders one line per genre over the selected years.
// The genre selection does not apply to this view.
func LineSeries(base *Base, snap Snapshot) Descriptor {
	rows := base.inRange(snap)
	title := "Domestic Box Office Revenue by Genre Over Time"

	return Descriptor{
		View:  ViewLine,
		Kind:  KindChart,
		Title: title,
		Chart: &ChartConfig{
			ChartType:  ChartLine,
			Title:      title,
			XAxis:      axisYear,
			YAxis:      axisRevenue,
			Categories: yearLabels(rows),
			Series:     seriesByGenre(base, rows),
		},
	}
}

// YearlyBars renders a bar group per year with one bar per genre
func YearlyBars(base *Base, snap Snapshot) Descriptor {
	rows := aggregate.FilterByGenres(base.inRange(snap), snap.Genres)
	title := fmt.Sprintf("Yearly Domestic Box Office by Genre (%d-%d)", snap.Years.Min, snap.Years.Max)

	return Descriptor{
		View:  ViewYearlyBars,
		Kind:  KindChart,
		Title: title,
		Chart: &ChartConfig{
			ChartType:  ChartGroupedBar,
			Title:      title,
			XAxis:      axisYear,
			YAxis:      axisRevenue,
			Categories: yearLabels(rows),
			Series:     seriesByGenre(base, rows),
		},
	}
}

// TotalBars renders one bar per genre holding its revenue summed over the selected years
func TotalBars(base *Base, snap Snapshot) Descriptor {
	rows := aggregate.FilterByGenres(base.inRange(snap), snap.Genres)
	totals := aggregate.TotalByGenre(rows)
	title := fmt.Sprintf("Total Domestic Box Office Revenue by Genre (%d-%d)", snap.Years.Min, snap.Years.Max)

	genres := make([]string, 0, len(totals))
	for g := range totals {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	points := make([]ChartPoint, 0, len(genres))
	for _, g := range genres {
		points = append(points, ChartPoint{Label: g, Value: totals[g]})
	}

	series := []ChartSeries{}
	if len(points) > 0 {
		series = append(series, ChartSeries{Name: axisRevenue, Points: points})
	}

	return Descriptor{
		View:  ViewTotalBars,
		Kind:  KindChart,
		Title: title,
		Chart: &ChartConfig{
			ChartType:  ChartBar,
			Title:      title,
			XAxis:      axisGenre,
			YAxis:      axisRevenue,
			Categories: genres,
			Series:     series,
		},
	}
}

// seriesByGenre builds one series per genre, in order of first appearance.
// Rows arrive sorted by year, so each series' points are too.
func seriesByGenre(base *Base, rows []core.GenreYear) []ChartSeries {
	index := make(map[string]int)
	series := make([]ChartSeries, 0)

	for _, row := range rows {
		i, ok := index[row.Genre]
		if !ok {
			i = len(series)
			index[row.Genre] = i
			series = append(series, ChartSeries{
				Name:   row.Genre,
				Color:  base.color(row.Genre),
				Points: make([]ChartPoint, 0),
			})
		}
		series[i].Points = append(series[i].Points, ChartPoint{
			Label: strconv.Itoa(row.Year),
			Value: row.Revenue,
		})
	}
	return series
}

func yearLabels(rows []core.GenreYear) []string {
	labels := make([]string, 0)
	last := 0
	for i, row := range rows {
		if i == 0 || row.Year != last {
			labels = append(labels, strconv.Itoa(row.Year))
			last = row.Year
		}
	}
	return labels
}
