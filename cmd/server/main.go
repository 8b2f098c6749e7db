package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizlens-backend/internal/config"
	"quizlens-backend/internal/handlers"
	"quizlens-backend/internal/router"
	"quizlens-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting QuizLens Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if cfg.APIKey == "" {
		log.Println("⚠ API_KEY is not set; upload and analysis requests will be rejected")
	}
	if cfg.BaseURL == "" {
		log.Println("⚠ BASE_URL is not set; the video list will be empty")
	}

	// ──── Step 2: Initialize Reka Vision Client ────
	reka := services.NewRekaClient(cfg.APIKey, cfg.BaseURL, cfg.VideoQAEndpoint)
	store := services.NewVideoStore(reka, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	log.Println("✓ Reka Vision client initialized")

	// ──── Step 3: Initialize Handlers ────
	pageHandler, err := handlers.NewPageHandler(store)
	if err != nil {
		log.Fatalf("✗ Template parsing failed: %v", err)
	}
	videoHandler := handlers.NewVideoHandler(store, reka)
	insightHandler := handlers.NewInsightHandler(reka)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(pageHandler, videoHandler, insightHandler, cfg.RateLimitPerMin)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Quiz generation holds a response open for up to 90s of upstream
		// work, so the write timeout has to sit above that.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ QuizLens Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
