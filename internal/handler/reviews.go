package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nitishkumar2026/CineReview/internal/auth"
)

type SubmitReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"required,max=2000"`
}

// GET /movies/{movieID}/reviews
func (h *Handler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	reviews, err := h.service.ListMovieReviews(r.Context(), movieID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: reviews})
}

// POST /movies/{movieID}/reviews (authenticated)
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token", "Authentication required")
		return
	}

	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Rating must be 1-5 and review text is required")
		return
	}

	movieID := chi.URLParam(r, "movieID")
	review, summary, err := h.service.SubmitReview(r.Context(), claims.UserID, movieID, req.Rating, req.ReviewText)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SubmitReviewResponse{
		Data:          review,
		RatingSummary: summary,
	})
}

// GET /users/{userID}/reviews
func (h *Handler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	reviews, err := h.service.ListUserReviews(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: reviews})
}
