// Package aggregate holds the genre-year aggregate and the pure queries
// every dashboard view is built from.
package aggregate

import (
	"sort"

	"github.com/newthinker/boxoffice/internal/core"
)

// Table is the immutable genre-year aggregate. It is built once by
// Aggregate and only read afterwards, so a single *Table can be shared
// by any number of concurrent callers.
type Table struct {
	rows   []core.GenreYear
	genres []string
	years  core.YearRange
}

type pairKey struct {
	year  int
	genre string
}

// Aggregate groups movies by (release year, genre) and sums their domestic
// box office. Rows are ordered by year, then genre.
func Aggregate(movies []core.Movie) *Table {
	sums := make(map[pairKey]float64)
	seen := make(map[string]struct{})
	genres := make([]string, 0)

	for _, m := range movies {
		if !m.IsValid() {
			continue
		}
		sums[pairKey{year: m.ReleaseYear, genre: m.Genre}] += m.DomesticBoxOffice
		if _, ok := seen[m.Genre]; !ok {
			seen[m.Genre] = struct{}{}
			genres = append(genres, m.Genre)
		}
	}

	rows := make([]core.GenreYear, 0, len(sums))
	for k, v := range sums {
		rows = append(rows, core.GenreYear{Year: k.year, Genre: k.genre, Revenue: v})
	}
	sortRows(rows)

	t := &Table{rows: rows, genres: genres}
	if len(rows) > 0 {
		t.years = core.YearRange{Min: rows[0].Year, Max: rows[len(rows)-1].Year}
	}
	return t
}

// Rows returns a copy of the aggregate rows.
func (t *Table) Rows() []core.GenreYear {
	out := make([]core.GenreYear, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of (year, genre) pairs.
func (t *Table) Len() int { return len(t.rows) }

// Genres returns the dataset's genres in the order they first appear in the source.
func (t *Table) Genres() []string {
	out := make([]string, len(t.genres))
	copy(out, t.genres)
	return out
}

// Years returns the smallest and largest release year present.
// The zero range is returned for an empty table.
func (t *Table) Years() core.YearRange { return t.years }

// FilterByYearRange returns the rows of the table inside [minYear, maxYear].
func (t *Table) FilterByYearRange(minYear, maxYear int) []core.GenreYear {
	return FilterByYearRange(t.rows, minYear, maxYear)
}

func sortRows(rows []core.GenreYear) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Genre < rows[j].Genre
	})
}
