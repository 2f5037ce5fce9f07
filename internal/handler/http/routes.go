package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/quiz", h.getQuiz)
	router.Post("/start", h.startSession)
	router.Get("/session/{sessionId}", h.getSession)
	router.Post("/answer", h.submitAnswer)
	router.Post("/finish", h.finishSession)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}).Handler(next)
}
