// Package search implements approximate text matching over a catalog
// snapshot. Movies are scored per field with weighted normalized edit
// distance and returned best match first.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
)

const (
	weightTitle    = 0.6
	weightDirector = 0.2
	weightCast     = 0.2

	// matchThreshold is the maximum normalized edit distance still
	// considered a match. Lower is stricter.
	matchThreshold = 0.4

	// minMatchLength keeps one-letter noise out of the index.
	minMatchLength = 2

	// fieldBias keeps the field weight relevant when two fields match
	// equally well; an exact title hit must still outrank an exact
	// cast hit.
	fieldBias = 0.001
)

type scoredMovie struct {
	movie domain.Movie
	score float64
}

// Search ranks movies by weighted fuzzy relevance to query, best match
// first, with ties resolved by catalog order. Movies with no field within
// the match threshold are excluded. Queries shorter than the minimum
// match length return no results; blank queries are the caller's
// responsibility (the filter pipeline treats them as no constraint).
func Search(movies []domain.Movie, query string) []domain.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minMatchLength {
		return nil
	}

	scored := make([]scoredMovie, 0, len(movies))
	for _, m := range movies {
		if score, ok := scoreMovie(m, q); ok {
			scored = append(scored, scoredMovie{movie: m, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score < scored[j].score
	})

	results := make([]domain.Movie, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.movie)
	}
	return results
}

// scoreMovie combines the per-field distances, discounting each by its
// field weight so a title hit outranks an equally close cast hit. The
// final score is the best weighted field distance.
func scoreMovie(m domain.Movie, q string) (float64, bool) {
	best := 0.0
	matched := false

	consider := func(dist float64, ok bool, weight float64) {
		if !ok {
			return
		}
		weighted := (dist + fieldBias) * (1 - weight)
		if !matched || weighted < best {
			best = weighted
			matched = true
		}
	}

	dist, ok := fieldDistance(m.Title, q)
	consider(dist, ok, weightTitle)

	dist, ok = fieldDistance(m.Director, q)
	consider(dist, ok, weightDirector)

	for _, member := range m.Cast {
		dist, ok = fieldDistance(member, q)
		consider(dist, ok, weightCast)
	}

	return best, matched
}

// fieldDistance returns the best normalized edit distance between the
// query and the field, comparing against the whole field and each word
// so multi-word titles still match single-word queries.
func fieldDistance(text, q string) (float64, bool) {
	lowered := strings.ToLower(text)
	candidates := strings.Fields(lowered)
	candidates = append(candidates, lowered)

	best := 0.0
	matched := false
	qLen := utf8.RuneCountInString(q)

	for _, cand := range candidates {
		candLen := utf8.RuneCountInString(cand)
		if candLen < minMatchLength {
			continue
		}
		longer := candLen
		if qLen > longer {
			longer = qLen
		}
		norm := float64(levenshtein.ComputeDistance(q, cand)) / float64(longer)
		if norm > matchThreshold {
			continue
		}
		if !matched || norm < best {
			best = norm
			matched = true
		}
	}

	return best, matched
}
