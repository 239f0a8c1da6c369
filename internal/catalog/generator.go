package catalog

import (
	"fmt"
	"math/rand"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
)

// catalogSeed anchors the per-index sources. Changing it reshuffles every
// derived field, so it is part of the catalog's identity.
const catalogSeed int64 = 42

var genres = []string{"Action", "Drama", "Comedy", "Thriller", "Sci-Fi", "Horror"}

var titlesByGenre = map[string][]string{
	"Action": {
		"Steel Vengeance", "The Last Stand", "Midnight Run", "Iron Protocol",
		"Rogue Strike", "Crimson Tide Rising", "The Extraction", "Velocity",
		"Broken Arrow Down", "Final Hour",
	},
	"Drama": {
		"The Quiet Hours", "Letters from Nowhere", "A Distant Shore", "The Inheritance",
		"Winter Light", "The Long Goodbye Home", "Paper Houses", "Still Waters",
		"The Weight of Rain", "Glass Gardens",
	},
	"Comedy": {
		"The Wedding Disaster", "Office Politics", "My Fake Vacation", "The Roommate Pact",
		"Dinner at Eight-Thirty", "The Substitute Dad", "Road Trip Rules", "Awkward Reunion",
		"The Neighborhood Watch", "Best Man Problems",
	},
	"Thriller": {
		"The Silent Witness", "Vanishing Point North", "The Cipher", "Cold Pursuit",
		"The Informant's Game", "Blackout Protocol", "Eight Hours", "The Passenger List",
		"False Testimony", "The Surveillance",
	},
	"Sci-Fi": {
		"The Matrix", "Event Horizon Beta", "Solar Drift", "The Mars Directive",
		"Quantum Gate", "Synthetic Dawn", "The Andromeda Signal", "Gravity Well",
		"The Terraform Project", "Echoes of Tomorrow",
	},
	"Horror": {
		"The Hollow House", "Whispers in the Dark", "The Ritual Below", "Night Harvest",
		"The Caretaker's Secret", "Blood Moon Rising", "The Abandoned Ward", "Silent Screams",
		"The Midnight Visitor", "Cellar Door",
	},
}

var secondaryGenres = map[string][]string{
	"Action":   {"Thriller", "Adventure", "Crime"},
	"Drama":    {"Romance", "History", "Crime"},
	"Comedy":   {"Romance", "Family", "Drama"},
	"Thriller": {"Mystery", "Crime", "Drama"},
	"Sci-Fi":   {"Action", "Adventure", "Mystery"},
	"Horror":   {"Mystery", "Thriller", "Supernatural"},
}

var directors = []string{
	"Elena Vasquez", "Marcus Chen", "Sofia Lindqvist", "David Okafor",
	"Yuki Tanaka", "Isabella Romano", "James Whitfield", "Priya Sharma",
	"Viktor Petrov", "Amara Diallo", "Lucas Moreau", "Hannah Goldberg",
}

var castPool = []string{
	"Oliver Reeves", "Maya Castellanos", "Theodore Blackwood", "Zara Okonkwo",
	"Sebastian Cruz", "Ingrid Larsson", "Rajesh Kapoor", "Celine Dubois",
	"Dmitri Volkov", "Aisha Rahman", "Connor Walsh", "Lucia Fernandez",
	"Kenji Nakamura", "Freya Andersen", "Gabriel Santos", "Nadia Petrova",
	"Marcus Holloway", "Simone Laurent", "Felix Gruber", "Leila Hassan",
}

var synopsisOpeners = []string{
	"In a world on the edge of collapse",
	"After a mysterious disappearance",
	"When the past refuses to stay buried",
	"Against all odds",
	"In the aftermath of a terrible secret",
	"On the eve of everything changing",
}

var synopsisArcs = []string{
	"an unlikely hero must confront the truth",
	"two strangers find their fates intertwined",
	"a family is forced to face what they left behind",
	"one decision sets off a chain of events no one can stop",
	"a reluctant outsider becomes the only hope",
	"old loyalties are tested in ways nobody expected",
}

// Generate builds a catalog of count movies. Every field of the record at
// position i is derived from i alone, so repeated calls return identical
// catalogs and Generate(n)[:k] equals Generate(k) for any k <= n. The
// detail-lookup path depends on that prefix property to stay consistent
// with the listing catalog.
func Generate(count int) ([]domain.Movie, error) {
	if count <= 0 {
		return nil, fmt.Errorf("catalog size must be positive, got %d: %w", count, domain.ErrInvalidArgument)
	}

	movies := make([]domain.Movie, 0, count)
	for i := 0; i < count; i++ {
		movies = append(movies, generateMovie(i))
	}
	return movies, nil
}

func generateMovie(i int) domain.Movie {
	rng := rand.New(rand.NewSource(catalogSeed + int64(i)))

	genre := genres[i%len(genres)]
	titles := titlesByGenre[genre]
	title := titles[(i/len(genres))%len(titles)]
	if cycle := i / (len(genres) * len(titles)); cycle > 0 {
		title = fmt.Sprintf("%s %d", title, cycle+1)
	}

	genreTags := []string{genre}
	if rng.Float64() < 0.6 {
		extras := secondaryGenres[genre]
		genreTags = append(genreTags, extras[rng.Intn(len(extras))])
	}

	castSize := 3 + rng.Intn(3)
	castStart := rng.Intn(len(castPool))
	cast := make([]string, 0, castSize)
	for j := 0; j < castSize; j++ {
		cast = append(cast, castPool[(castStart+j)%len(castPool)])
	}

	synopsis := fmt.Sprintf("%s, %s.",
		synopsisOpeners[rng.Intn(len(synopsisOpeners))],
		synopsisArcs[rng.Intn(len(synopsisArcs))])

	trailerURL := ""
	if rng.Float64() < 0.5 {
		trailerURL = fmt.Sprintf("https://trailers.example.com/watch/movie-%d", i+1)
	}

	return domain.Movie{
		ID:            fmt.Sprintf("movie-%d", i+1),
		Title:         title,
		Genre:         genreTags,
		ReleaseYear:   1970 + rng.Intn(56),
		Director:      directors[rng.Intn(len(directors))],
		Cast:          cast,
		Synopsis:      synopsis,
		PosterURL:     fmt.Sprintf("https://picsum.photos/seed/cinereview-%d/400/600", i+1),
		TrailerURL:    trailerURL,
		AverageRating: float64(25+rng.Intn(26)) / 10,
		TotalReviews:  50 + rng.Intn(1950),
		Duration:      85 + rng.Intn(76),
		Featured:      rng.Float64() < 0.15,
		Trending:      rng.Float64() < 0.2,
	}
}
