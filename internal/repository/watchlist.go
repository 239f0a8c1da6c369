package repository

import (
	"sync"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
)

// WatchlistStore holds watchlist entries and enforces the one-entry-per
// (user, movie) invariant itself, so callers do not need a membership
// check before adding.
type WatchlistStore struct {
	mu    sync.RWMutex
	items []domain.WatchlistItem
}

func NewWatchlistStore() *WatchlistStore {
	return &WatchlistStore{}
}

// Upsert adds the item unless the user already has an entry for the same
// movie, in which case the existing entry is returned unchanged.
func (s *WatchlistStore) Upsert(item domain.WatchlistItem) domain.WatchlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.UserID == item.UserID && existing.MovieID == item.MovieID {
			return existing
		}
	}
	s.items = append(s.items, item)
	return item
}

func (s *WatchlistStore) ListByUser(userID string) []domain.WatchlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.WatchlistItem
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out
}

func (s *WatchlistStore) Remove(userID, movieID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.UserID == userID && item.MovieID == movieID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrWatchlistItemNotFound
}
