package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Nitishkumar2026/CineReview/internal/auth"
	"github.com/Nitishkumar2026/CineReview/internal/handler"
)

func Setup(h *handler.Handler, tokens *auth.TokenManager) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Auth
	r.Post("/auth/login", h.Login)
	r.Post("/auth/register", h.Register)
	r.Post("/auth/logout", h.Logout)

	// Catalog
	r.Get("/movies", h.GetMovies)
	r.Get("/movies/featured", h.GetFeaturedMovies)
	r.Get("/movies/trending", h.GetTrendingMovies)
	r.Get("/movies/{movieID}", h.GetMovie)
	r.Get("/movies/{movieID}/reviews", h.GetMovieReviews)

	// Users
	r.Get("/users/{userID}", h.GetUser)
	r.Get("/users/{userID}/reviews", h.GetUserReviews)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(tokens.Require)
		r.Post("/movies/{movieID}/reviews", h.SubmitReview)
		r.Get("/me/watchlist", h.GetWatchlist)
		r.Post("/me/watchlist", h.AddToWatchlist)
		r.Delete("/me/watchlist/{movieID}", h.RemoveFromWatchlist)
	})

	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
