package handler

import "github.com/Nitishkumar2026/CineReview/internal/domain"

// DataResponse is the plain envelope used by non-paginated endpoints.
type DataResponse struct {
	Data any `json:"data"`
}

type SubmitReviewResponse struct {
	Data          domain.Review        `json:"data"`
	RatingSummary domain.RatingSummary `json:"rating_summary"`
}

type AuthResponse struct {
	Data  domain.User `json:"data"`
	Token string      `json:"token"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
