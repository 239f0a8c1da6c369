package main

import (
	"log"
	"net/http"

	"github.com/Nitishkumar2026/CineReview/internal/auth"
	"github.com/Nitishkumar2026/CineReview/internal/config"
	"github.com/Nitishkumar2026/CineReview/internal/handler"
	"github.com/Nitishkumar2026/CineReview/internal/repository"
	"github.com/Nitishkumar2026/CineReview/internal/router"
	"github.com/Nitishkumar2026/CineReview/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	// ------------ Stores ---------------
	reviews := repository.NewReviewStore()
	watchlist := repository.NewWatchlistStore()
	users := repository.NewUserStore()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// ------------ Service ---------------
	svc := service.New(service.Options{
		CatalogSize:    cfg.CatalogSize,
		LookupPoolSize: cfg.LookupPoolSize,
		SimLatency:     cfg.SimLatency,
	}, reviews, watchlist, users, tokens)

	// ------------ Seed Data ---------------
	if err := svc.SeedReviews(); err != nil {
		log.Fatalf("failed to seed reviews %v", err)
	}

	// ---------------- Server --------------------
	h := handler.NewHandler(svc, cfg.DefaultPageSize)
	r := router.Setup(h, tokens)

	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}
