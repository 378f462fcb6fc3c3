package aggregate

import (
	"sort"

	"github.com/newthinker/boxoffice/internal/core"
)

// FilterByYearRange keeps rows with minYear <= year <= maxYear.
// An inverted range yields an empty result.
func FilterByYearRange(rows []core.GenreYear, minYear, maxYear int) []core.GenreYear {
	r := core.YearRange{Min: minYear, Max: maxYear}
	out := make([]core.GenreYear, 0)
	if r.IsEmpty() {
		return out
	}
	for _, row := range rows {
		if r.Contains(row.Year) {
			out = append(out, row)
		}
	}
	return out
}

// FilterByGenres keeps rows whose genre is in genres.
// An empty selection means no filter and returns rows unchanged.
func FilterByGenres(rows []core.GenreYear, genres []string) []core.GenreYear {
	if len(genres) == 0 {
		return rows
	}

	set := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		set[g] = struct{}{}
	}

	out := make([]core.GenreYear, 0, len(rows))
	for _, row := range rows {
		if _, ok := set[row.Genre]; ok {
			out = append(out, row)
		}
	}
	return out
}

// TotalByGenre sums revenue per genre. Genres without rows are absent from the result.
func TotalByGenre(rows []core.GenreYear) map[string]float64 {
	totals := make(map[string]float64)
	for _, row := range rows {
		totals[row.Genre] += row.Revenue
	}
	return totals
}

// PercentChangeByGenre compares each genre's revenue at minYear with its
// revenue at maxYear. Every genre seen at either boundary is reported; a
// missing boundary counts as zero. A zero start is divided as if it were 1.
//
// Rows are sorted by percent change, highest first. Ties keep genre name order.
func PercentChangeByGenre(rows []core.GenreYear, minYear, maxYear int) []core.SummaryRow {
	start := make(map[string]float64)
	end := make(map[string]float64)
	seen := make(map[string]struct{})

	for _, row := range rows {
		if row.Year == minYear {
			start[row.Genre] += row.Revenue
			seen[row.Genre] = struct{}{}
		}
		if row.Year == maxYear {
			end[row.Genre] += row.Revenue
			seen[row.Genre] = struct{}{}
		}
	}

	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	out := make([]core.SummaryRow, 0, len(genres))
	for _, g := range genres {
		out = append(out, core.SummaryRow{
			Genre:         g,
			StartRevenue:  start[g],
			EndRevenue:    end[g],
			PercentChange: PercentChange(start[g], end[g]),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PercentChange > out[j].PercentChange
	})
	return out
}

// PercentChange returns (end-start)/start*100, substituting 1 for a zero start.
func PercentChange(start, end float64) float64 {
	denom := start
	if denom == 0 {
		denom = 1
	}
	return (end - start) / denom * 100
}
