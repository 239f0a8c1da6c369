package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Nitishkumar2026/CineReview/internal/auth"
	"github.com/Nitishkumar2026/CineReview/internal/catalog"
	"github.com/Nitishkumar2026/CineReview/internal/domain"
	"github.com/Nitishkumar2026/CineReview/internal/repository"
)

// Simulated network latency tiers, matching what a thin remote API would
// feel like. Applied before each operation when enabled; the query
// pipeline underneath stays a pure computation.
const (
	delayShort  = 300 * time.Millisecond
	delayMedium = 500 * time.Millisecond
	delayLong   = 1 * time.Second
)

const seedReviewMovies = 10

type Service struct {
	catalogSize    int
	lookupPoolSize int
	simLatency     bool

	reviews   *repository.ReviewStore
	watchlist *repository.WatchlistStore
	users     *repository.UserStore
	tokens    *auth.TokenManager
}

type Options struct {
	CatalogSize    int
	LookupPoolSize int
	SimLatency     bool
}

func New(opts Options, reviews *repository.ReviewStore, watchlist *repository.WatchlistStore, users *repository.UserStore, tokens *auth.TokenManager) *Service {
	return &Service{
		catalogSize:    opts.CatalogSize,
		lookupPoolSize: opts.LookupPoolSize,
		simLatency:     opts.SimLatency,
		reviews:        reviews,
		watchlist:      watchlist,
		users:          users,
		tokens:         tokens,
	}
}

// SeedReviews populates the review store with the deterministic startup
// history for the first few catalog movies.
func (s *Service) SeedReviews() error {
	movies, err := catalog.Generate(s.catalogSize)
	if err != nil {
		return fmt.Errorf("generate catalog for seed reviews: %w", err)
	}
	seeded := catalog.GenerateSeedReviews(movies, seedReviewMovies)
	for _, r := range seeded {
		s.reviews.Add(r)
	}
	log.Printf("[service] seeded %d reviews across %d movies", len(seeded), seedReviewMovies)
	return nil
}

// GetMovies runs the full query pipeline: regenerate the catalog, apply
// the filter criteria, slice the requested page.
func (s *Service) GetMovies(ctx context.Context, page, pageSize int, filters domain.MovieFilters) (catalog.Page[domain.Movie], error) {
	if err := s.delay(ctx, delayMedium); err != nil {
		return catalog.Page[domain.Movie]{}, err
	}

	movies, err := catalog.Generate(s.catalogSize)
	if err != nil {
		return catalog.Page[domain.Movie]{}, err
	}

	filtered := catalog.ApplyFilters(movies, filters)
	return catalog.Paginate(filtered, page, pageSize)
}

func (s *Service) GetFeaturedMovies(ctx context.Context) ([]domain.Movie, error) {
	if err := s.delay(ctx, delayShort); err != nil {
		return nil, err
	}
	return s.listByFlag(func(m domain.Movie) bool { return m.Featured })
}

func (s *Service) GetTrendingMovies(ctx context.Context) ([]domain.Movie, error) {
	if err := s.delay(ctx, delayShort); err != nil {
		return nil, err
	}
	return s.listByFlag(func(m domain.Movie) bool { return m.Trending })
}

func (s *Service) listByFlag(pred func(domain.Movie) bool) ([]domain.Movie, error) {
	movies, err := catalog.Generate(s.catalogSize)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

// GetMovie locates a movie by ID in the lookup pool. The pool is larger
// than the listing catalog but shares its prefix, so a movie's detail
// view always matches its listing entry.
func (s *Service) GetMovie(ctx context.Context, id string) (domain.Movie, error) {
	if err := s.delay(ctx, delayShort); err != nil {
		return domain.Movie{}, err
	}
	return s.lookup(id)
}

func (s *Service) lookup(id string) (domain.Movie, error) {
	movies, err := catalog.Generate(s.lookupPoolSize)
	if err != nil {
		return domain.Movie{}, err
	}
	for _, m := range movies {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Movie{}, fmt.Errorf("movie %q: %w", id, domain.ErrMovieNotFound)
}

func (s *Service) ListMovieReviews(ctx context.Context, movieID string) ([]domain.Review, error) {
	if err := s.delay(ctx, delayShort); err != nil {
		return nil, err
	}
	return s.reviews.ListByMovie(movieID), nil
}

func (s *Service) ListUserReviews(ctx context.Context, userID string) ([]domain.Review, error) {
	if err := s.delay(ctx, delayShort); err != nil {
		return nil, err
	}
	return s.reviews.ListByUser(userID), nil
}

// SubmitReview records an immutable review and returns it together with
// the movie's recomputed rating summary.
func (s *Service) SubmitReview(ctx context.Context, userID, movieID string, rating int, text string) (domain.Review, domain.RatingSummary, error) {
	if err := s.delay(ctx, delayMedium); err != nil {
		return domain.Review{}, domain.RatingSummary{}, err
	}

	if rating < 1 || rating > 5 {
		return domain.Review{}, domain.RatingSummary{},
			fmt.Errorf("rating must be between 1 and 5, got %d: %w", rating, domain.ErrInvalidArgument)
	}

	if _, err := s.lookup(movieID); err != nil {
		return domain.Review{}, domain.RatingSummary{}, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return domain.Review{}, domain.RatingSummary{}, err
	}

	review := domain.Review{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		MovieID:    movieID,
		Rating:     rating,
		ReviewText: text,
		Timestamp:  time.Now().UTC(),
		User: domain.ReviewAuthor{
			Username:       user.Username,
			ProfilePicture: user.ProfilePicture,
		},
	}
	s.reviews.Add(review)

	summary := domain.SummarizeRatings(s.reviews.ListByMovie(movieID))
	return review, summary, nil
}

// GetUser returns the stored profile with a live review count.
func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	if err := s.delay(ctx, delayShort); err != nil {
		return domain.User{}, err
	}

	user, err := s.users.GetByID(id)
	if err != nil {
		return domain.User{}, err
	}
	user.TotalReviews = s.reviews.CountByUser(id)
	return user, nil
}

func (s *Service) GetWatchlist(ctx context.Context, userID string) ([]domain.WatchlistItem, error) {
	if err := s.delay(ctx, delayShort); err != nil {
		return nil, err
	}
	return s.watchlist.ListByUser(userID), nil
}

// AddToWatchlist snapshots the movie into a new entry. Adding a movie
// the user already listed returns the existing entry unchanged.
func (s *Service) AddToWatchlist(ctx context.Context, userID, movieID string) (domain.WatchlistItem, error) {
	if err := s.delay(ctx, delayShort); err != nil {
		return domain.WatchlistItem{}, err
	}

	movie, err := s.lookup(movieID)
	if err != nil {
		return domain.WatchlistItem{}, err
	}

	item := domain.WatchlistItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		MovieID:   movieID,
		DateAdded: time.Now().UTC(),
		Movie:     movie,
	}
	return s.watchlist.Upsert(item), nil
}

func (s *Service) RemoveFromWatchlist(ctx context.Context, userID, movieID string) error {
	if err := s.delay(ctx, delayShort); err != nil {
		return err
	}
	return s.watchlist.Remove(userID, movieID)
}

// Login always succeeds: unknown emails resolve to the default profile,
// accounts registered this session get a password check.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	if err := s.delay(ctx, delayLong); err != nil {
		return domain.User{}, "", err
	}

	user, found := s.users.GetByEmail(email)
	if !found {
		user = s.users.DefaultUser()
	} else if !s.users.VerifyPassword(user.ID, password) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("sign session token: %w", err)
	}

	user.TotalReviews = s.reviews.CountByUser(user.ID)
	return user, token, nil
}

func (s *Service) Register(ctx context.Context, username, email, password string) (domain.User, string, error) {
	if err := s.delay(ctx, delayLong); err != nil {
		return domain.User{}, "", err
	}

	user, err := s.users.Register(username, email, password)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("sign session token: %w", err)
	}
	return user, token, nil
}

// Logout only acknowledges; sessions are stateless tokens.
func (s *Service) Logout(ctx context.Context) error {
	return s.delay(ctx, delayShort)
}

func (s *Service) delay(ctx context.Context, d time.Duration) error {
	if !s.simLatency {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
