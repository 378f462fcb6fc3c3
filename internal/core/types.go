package core

// SentinelGenre marks records that carry more than one genre. They are dropped before aggregation.
const SentinelGenre = "Multiple Genres"

// Movie is a single row of the cleaned dataset
type Movie struct {
	ReleaseYear       int
	Genre             string
	DomesticBoxOffice float64 // USD
}

// IsValid checks if the movie can take part in aggregation
func (m Movie) IsValid() bool {
	return m.Genre != "" && m.DomesticBoxOffice >= 0
}

// GenreYear is one row of the genre-year aggregate: the summed
// domestic box office of every movie with this release year and genre.
type GenreYear struct {
	Year    int     `json:"year"`
	Genre   string  `json:"genre"`
	Revenue float64 `json:"revenue"`
}

// YearRange is an inclusive range of release years
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether year lies inside the range. An inverted range contains nothing.
func (r YearRange) Contains(year int) bool {
	return r.Min <= year && year <= r.Max
}

// IsEmpty reports whether the range is inverted
func (r YearRange) IsEmpty() bool {
	return r.Min > r.Max
}

// SummaryRow holds the start/end revenue of a genre over a year range.
//
// PercentChange is computed against a denominator of 1 when StartRevenue
// is zero, so a genre that appears from nothing reports end*100.
type SummaryRow struct {
	Genre         string  `json:"genre"`
	StartRevenue  float64 `json:"start_revenue"`
	EndRevenue    float64 `json:"end_revenue"`
	PercentChange float64 `json:"percent_change"`
}
