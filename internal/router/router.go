package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"quizlens-backend/internal/handlers"
	"quizlens-backend/internal/middleware"
)

func New(
	pageHandler *handlers.PageHandler,
	videoHandler *handlers.VideoHandler,
	insightHandler *handlers.InsightHandler,
	rateLimitPerMin int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)

	apiLimiter := middleware.NewRateLimiter(rateLimitPerMin, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Pages ────
	r.Get("/", pageHandler.Home)
	r.Get("/form", pageHandler.Form)
	r.Get("/analytics", pageHandler.Analytics)
	r.Handle("/static/*", pageHandler.Static())

	// ──── API ────
	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		r.Post("/upload_video", videoHandler.Upload)
		r.Post("/delete_video", videoHandler.Delete)
		r.Post("/check_video_status", videoHandler.CheckStatus)
		r.Post("/process", videoHandler.Process)

		r.Post("/analyze", insightHandler.Analyze)
		r.Post("/generate_quiz", insightHandler.GenerateQuiz)
		r.Post("/generate_explanations", insightHandler.GenerateExplanations)
		r.Post("/smart_recommendations", insightHandler.SmartRecommendations)
	})

	return r
}
