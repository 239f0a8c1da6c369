package domain

type Movie struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Genre         []string `json:"genre"`
	ReleaseYear   int      `json:"release_year"`
	Director      string   `json:"director"`
	Cast          []string `json:"cast"`
	Synopsis      string   `json:"synopsis"`
	PosterURL     string   `json:"poster_url"`
	TrailerURL    string   `json:"trailer_url,omitempty"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
	Duration      int      `json:"duration"`
	Featured      bool     `json:"featured"`
	Trending      bool     `json:"trending"`
}

// HasGenre reports whether the movie carries the given genre tag.
// Matching is exact and case-sensitive.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if g == genre {
			return true
		}
	}
	return false
}

// MovieFilters holds one optional constraint per filter dimension.
// A nil field means no constraint on that dimension.
type MovieFilters struct {
	Search    string
	Genre     string
	Year      *int
	MinRating *float64
}

// Empty reports whether no dimension is constrained.
func (f MovieFilters) Empty() bool {
	return f.Search == "" && f.Genre == "" && f.Year == nil && f.MinRating == nil
}
