package domain

import "errors"

var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrMovieNotFound         = errors.New("movie not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrWatchlistItemNotFound = errors.New("watchlist item not found")
)
