package domain

import (
	"math"
	"time"
)

// Review is immutable once created.
type Review struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	MovieID    string       `json:"movie_id"`
	Rating     int          `json:"rating"`
	ReviewText string       `json:"review_text"`
	Timestamp  time.Time    `json:"timestamp"`
	User       ReviewAuthor `json:"user"`
}

// ReviewAuthor carries the author display fields denormalized at
// submission time.
type ReviewAuthor struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// SummarizeRatings computes the mean rating rounded to one decimal and
// the review count. An empty slice yields a zero summary.
func SummarizeRatings(reviews []Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return RatingSummary{
		Average: math.Round(avg*10) / 10,
		Count:   len(reviews),
	}
}
