package repository

import (
	"sync"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
)

// ReviewStore keeps every submitted review for the process lifetime.
// Reviews are immutable once added and are never deleted.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

// Add prepends the review so listings come back newest first.
func (s *ReviewStore) Add(review domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append([]domain.Review{review}, s.reviews...)
}

func (s *ReviewStore) ListByMovie(movieID string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Review
	for _, r := range s.reviews {
		if r.MovieID == movieID {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReviewStore) ListByUser(userID string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Review
	for _, r := range s.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReviewStore) CountByUser(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.reviews {
		if r.UserID == userID {
			count++
		}
	}
	return count
}
