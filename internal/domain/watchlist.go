package domain

import "time"

// WatchlistItem embeds a full movie snapshot captured at add time; the
// snapshot is not re-fetched afterwards.
type WatchlistItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MovieID   string    `json:"movie_id"`
	DateAdded time.Time `json:"date_added"`
	Movie     Movie     `json:"movie"`
}
