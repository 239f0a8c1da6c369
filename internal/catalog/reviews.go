package catalog

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
)

var reviewAuthors = []string{
	"filmfanatic88", "reelcritic", "popcornpundit", "matineemona",
	"thelastrowseat", "cameraobscura", "screenjunkie", "creditssitter",
}

var reviewBodies = []string{
	"Went in with low expectations and came out genuinely impressed.",
	"The pacing drags in the middle but the finale lands well.",
	"Gorgeous to look at, though the script could have used another pass.",
	"A solid watch. The lead performance carries every scene.",
	"Not for everyone, but it stuck with me for days.",
	"The kind of movie that rewards a second viewing.",
	"Forgettable in places, but the last act is worth the ticket.",
	"Sharp dialogue and a score that does a lot of heavy lifting.",
}

// seedReviewBase keeps seeded review timestamps off the wall clock so
// the startup data is identical between runs.
var seedReviewBase = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// GenerateSeedReviews builds a deterministic review history for the
// first seedCount movies of the catalog, between 5 and 19 reviews each.
func GenerateSeedReviews(movies []domain.Movie, seedCount int) []domain.Review {
	if seedCount > len(movies) {
		seedCount = len(movies)
	}

	var reviews []domain.Review
	for i := 0; i < seedCount; i++ {
		rng := rand.New(rand.NewSource(catalogSeed + 1000 + int64(i)))
		count := 5 + rng.Intn(15)
		for j := 0; j < count; j++ {
			author := reviewAuthors[rng.Intn(len(reviewAuthors))]
			reviews = append(reviews, domain.Review{
				ID:         fmt.Sprintf("seed-review-%d-%d", i+1, j+1),
				UserID:     fmt.Sprintf("seed-user-%s", author),
				MovieID:    movies[i].ID,
				Rating:     1 + rng.Intn(5),
				ReviewText: reviewBodies[rng.Intn(len(reviewBodies))],
				Timestamp:  seedReviewBase.AddDate(0, 0, -rng.Intn(365)),
				User: domain.ReviewAuthor{
					Username:       author,
					ProfilePicture: fmt.Sprintf("https://picsum.photos/seed/cinereview-avatar-%s/200/200", author),
				},
			})
		}
	}
	return reviews
}
