// Package dataset reads the cleaned movie CSV into core.Movie records.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/newthinker/boxoffice/internal/core"
)

// Columns names the CSV headers the loader reads. Other columns are ignored.
type Columns struct {
	Year    string `mapstructure:"year"`
	Genre   string `mapstructure:"genre"`
	Revenue string `mapstructure:"revenue"`
}

// DefaultColumns returns the headers of the cleaned movies dataset
func DefaultColumns() Columns {
	return Columns{
		Year:    "Release Year",
		Genre:   "Genre",
		Revenue: "Domestic Box Office (USD)",
	}
}

// Options controls parsing
type Options struct {
	Columns      Columns
	ExcludeGenre string // rows with this genre are dropped; empty keeps everything
}

// DefaultOptions returns options for the cleaned movies dataset
func DefaultOptions() Options {
	return Options{
		Columns:      DefaultColumns(),
		ExcludeGenre: core.SentinelGenre,
	}
}

// Result is the outcome of parsing a dataset
type Result struct {
	Movies   []core.Movie
	Rows     int // data rows read, header excluded
	Excluded int // rows dropped for carrying the excluded genre
	Skipped  int // rows dropped for having no genre
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads CSV data. A missing column, an unparseable year, or an
// unparseable or negative box office value makes the whole dataset invalid.
// An empty box office cell counts as zero.
func Parse(data []byte, opts Options) (*Result, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, core.WrapError(core.ErrDatasetInvalid, errors.New("empty file"))
		}
		return nil, core.WrapError(core.ErrDatasetInvalid, fmt.Errorf("reading header: %w", err))
	}

	idx, err := columnIndexes(headers, opts.Columns)
	if err != nil {
		return nil, err
	}

	res := &Result{Movies: make([]core.Movie, 0)}
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, core.WrapError(core.ErrDatasetInvalid, fmt.Errorf("line %d: %w", line, err))
		}
		if isBlank(row) {
			continue
		}
		res.Rows++

		genre := field(row, idx.genre)
		if genre == "" {
			res.Skipped++
			continue
		}
		if opts.ExcludeGenre != "" && genre == opts.ExcludeGenre {
			res.Excluded++
			continue
		}

		year, err := parseYear(field(row, idx.year))
		if err != nil {
			return nil, core.WrapError(core.ErrDatasetInvalid, fmt.Errorf("line %d: %w", line, err))
		}

		revenue, err := parseRevenue(field(row, idx.revenue))
		if err != nil {
			return nil, core.WrapError(core.ErrDatasetInvalid, fmt.Errorf("line %d: %w", line, err))
		}

		res.Movies = append(res.Movies, core.Movie{
			ReleaseYear:       year,
			Genre:             genre,
			DomesticBoxOffice: revenue,
		})
	}

	return res, nil
}

type indexes struct {
	year, genre, revenue int
}

func columnIndexes(headers []string, cols Columns) (indexes, error) {
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		pos[strings.TrimSpace(h)] = i
	}

	lookup := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, core.WrapError(core.ErrDatasetInvalid, fmt.Errorf("missing column %q", name))
		}
		return i, nil
	}

	var idx indexes
	var err error
	if idx.year, err = lookup(cols.Year); err != nil {
		return idx, err
	}
	if idx.genre, err = lookup(cols.Genre); err != nil {
		return idx, err
	}
	if idx.revenue, err = lookup(cols.Revenue); err != nil {
		return idx, err
	}
	return idx, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Release years outside this range are rejected
const (
	minYear = 1
	maxYear = 9999
)

// parseYear accepts "2010" and the "2010.0" form numeric exports produce.
func parseYear(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < minYear || n > maxYear {
			return 0, fmt.Errorf("release year %q out of range", s)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid release year %q", s)
	}
	if f < minYear || f > maxYear {
		return 0, fmt.Errorf("release year %q out of range", s)
	}
	return int(f), nil
}

func parseRevenue(s string) (float64, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid box office value %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative box office value %q", s)
	}
	return f, nil
}
