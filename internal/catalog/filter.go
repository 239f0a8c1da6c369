package catalog

import (
	"strings"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
	"github.com/Nitishkumar2026/CineReview/internal/search"
)

// ApplyFilters runs the fixed filter pipeline: search, genre, year,
// minimum rating. Only the search stage reorders (by relevance); every
// later stage preserves the order it receives. Absent criteria leave the
// catalog untouched.
func ApplyFilters(movies []domain.Movie, f domain.MovieFilters) []domain.Movie {
	filtered := movies

	if q := strings.TrimSpace(f.Search); q != "" {
		filtered = search.Search(movies, q)
	}

	if f.Genre != "" {
		filtered = keep(filtered, func(m domain.Movie) bool {
			return m.HasGenre(f.Genre)
		})
	}

	if f.Year != nil {
		filtered = keep(filtered, func(m domain.Movie) bool {
			return m.ReleaseYear == *f.Year
		})
	}

	if f.MinRating != nil {
		filtered = keep(filtered, func(m domain.Movie) bool {
			return m.AverageRating >= *f.MinRating
		})
	}

	return filtered
}

func keep(movies []domain.Movie, pred func(domain.Movie) bool) []domain.Movie {
	out := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}
