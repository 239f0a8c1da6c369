package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
)

// GET /movies
func (h *Handler) GetMovies(w http.ResponseWriter, r *http.Request) {
	// Parse and validate page
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
			return
		}
		page = parsed
	}

	// Parse and validate limit
	limit := h.defaultPageSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 50 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	filters := domain.MovieFilters{
		Search: r.URL.Query().Get("search"),
		Genre:  r.URL.Query().Get("genre"),
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid year parameter")
			return
		}
		filters.Year = &year
	}

	if ratingStr := r.URL.Query().Get("min_rating"); ratingStr != "" {
		minRating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid min_rating parameter")
			return
		}
		filters.MinRating = &minRating
	}

	result, err := h.service.GetMovies(r.Context(), page, limit, filters)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GET /movies/featured
func (h *Handler) GetFeaturedMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetFeaturedMovies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: movies})
}

// GET /movies/trending
func (h *Handler) GetTrendingMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetTrendingMovies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: movies})
}

// GET /movies/{movieID}
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	movie, err := h.service.GetMovie(r.Context(), movieID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: movie})
}
