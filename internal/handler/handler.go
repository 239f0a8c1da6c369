package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
	"github.com/Nitishkumar2026/CineReview/internal/service"
)

type Handler struct {
	service         *service.Service
	validate        *validator.Validate
	defaultPageSize int
}

func NewHandler(svc *service.Service, defaultPageSize int) *Handler {
	return &Handler{
		service:         svc,
		validate:        validator.New(),
		defaultPageSize: defaultPageSize,
	}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// respondError maps service errors onto the HTTP error envelope.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, domain.ErrMovieNotFound):
		writeError(w, http.StatusNotFound, "movie_not_found", "Movie not found")
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user_not_found", "User not found")
	case errors.Is(err, domain.ErrWatchlistItemNotFound):
		writeError(w, http.StatusNotFound, "watchlist_item_not_found", "Watchlist item not found")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "Email or password is incorrect")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "Request timed out, please try again")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
