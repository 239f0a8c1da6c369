package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nitishkumar2026/CineReview/internal/auth"
)

type AddToWatchlistRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
}

// GET /me/watchlist (authenticated)
func (h *Handler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token", "Authentication required")
		return
	}

	items, err := h.service.GetWatchlist(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: items})
}

// POST /me/watchlist (authenticated)
func (h *Handler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token", "Authentication required")
		return
	}

	var req AddToWatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "movie_id is required")
		return
	}

	item, err := h.service.AddToWatchlist(r.Context(), claims.UserID, req.MovieID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, DataResponse{Data: item})
}

// DELETE /me/watchlist/{movieID} (authenticated)
func (h *Handler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token", "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "movieID")
	if err := h.service.RemoveFromWatchlist(r.Context(), claims.UserID, movieID); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: true})
}
