package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nitishkumar2026/CineReview/internal/auth"
	"github.com/Nitishkumar2026/CineReview/internal/domain"
	"github.com/Nitishkumar2026/CineReview/internal/handler"
	"github.com/Nitishkumar2026/CineReview/internal/repository"
	"github.com/Nitishkumar2026/CineReview/internal/router"
	"github.com/Nitishkumar2026/CineReview/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := service.New(service.Options{
		CatalogSize:    50,
		LookupPoolSize: 100,
		SimLatency:     false,
	},
		repository.NewReviewStore(),
		repository.NewWatchlistStore(),
		repository.NewUserStore(),
		tokens,
	)

	srv := httptest.NewServer(router.Setup(handler.NewHandler(svc, 12), tokens))
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	body := bytes.NewBufferString(`{"email":"cinefan@example.com","password":"anything"}`)
	resp, err := http.Post(srv.URL+"/auth/login", "application/json", body)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned %d", resp.StatusCode)
	}

	var authResp handler.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if authResp.Token == "" {
		t.Fatal("login returned no token")
	}
	return authResp.Token
}

func TestListMoviesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/movies?page=1&limit=12&genre=Horror&min_rating=4")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var page struct {
		Data       []domain.Movie `json:"data"`
		Page       int            `json:"page"`
		TotalPages int            `json:"total_pages"`
		TotalItems int            `json:"total_items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if page.Page != 1 {
		t.Errorf("expected page 1, got %d", page.Page)
	}
	if len(page.Data) > 12 {
		t.Errorf("expected at most 12 items, got %d", len(page.Data))
	}
	for _, m := range page.Data {
		if !m.HasGenre("Horror") || m.AverageRating < 4 {
			t.Errorf("movie %s escaped the filters: %v %.1f", m.ID, m.Genre, m.AverageRating)
		}
	}
}

func TestListMoviesInvalidParams(t *testing.T) {
	srv := newTestServer(t)

	for _, q := range []string{"page=0", "page=abc", "limit=0", "limit=999", "min_rating=9", "year=nope"} {
		resp, err := http.Get(srv.URL + "/movies?" + q)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, resp.StatusCode)
		}
	}
}

func TestMovieDetailEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/movies/movie-1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	missing, err := http.Get(srv.URL + "/movies/movie-9999")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown movie, got %d", missing.StatusCode)
	}
}

func TestSubmitReviewRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	body := bytes.NewBufferString(`{"rating":5,"review_text":"great"}`)
	resp, err := http.Post(srv.URL+"/movies/movie-1/reviews", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestSubmitReviewFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	do := func(payload string) *http.Response {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/movies/movie-1/reviews", bytes.NewBufferString(payload))
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		return resp
	}

	resp := do(`{"rating":4,"review_text":"worth a watch"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created handler.SubmitReviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Data.Rating != 4 || created.Data.MovieID != "movie-1" {
		t.Errorf("unexpected review %+v", created.Data)
	}
	if created.RatingSummary.Count != 1 || created.RatingSummary.Average != 4.0 {
		t.Errorf("unexpected rating summary %+v", created.RatingSummary)
	}

	bad := do(`{"rating":9,"review_text":"too good"}`)
	bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for out-of-range rating, got %d", bad.StatusCode)
	}
}

func TestWatchlistFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	do := func(method, path, payload string) *http.Response {
		var req *http.Request
		var err error
		if payload != "" {
			req, err = http.NewRequest(method, srv.URL+path, bytes.NewBufferString(payload))
		} else {
			req, err = http.NewRequest(method, srv.URL+path, nil)
		}
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		return resp
	}

	add := do(http.MethodPost, "/me/watchlist", `{"movie_id":"movie-5"}`)
	add.Body.Close()
	if add.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", add.StatusCode)
	}

	list := do(http.MethodGet, "/me/watchlist", "")
	defer list.Body.Close()
	if list.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", list.StatusCode)
	}
	var payload struct {
		Data []domain.WatchlistItem `json:"data"`
	}
	if err := json.NewDecoder(list.Body).Decode(&payload); err != nil {
		t.Fatalf("decode watchlist: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Movie.ID != "movie-5" {
		t.Errorf("unexpected watchlist %+v", payload.Data)
	}

	del := do(http.MethodDelete, "/me/watchlist/movie-5", "")
	del.Body.Close()
	if del.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", del.StatusCode)
	}

	again := do(http.MethodDelete, "/me/watchlist/movie-5", "")
	again.Body.Close()
	if again.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 removing a missing entry, got %d", again.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	fmt.Println("  health endpoint ok")
}
