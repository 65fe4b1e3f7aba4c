package server

import (
	"net/http"

	"r6-tracker/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// NewRouter wires the profile routes behind the request-id and
// rate-limit middleware.
func NewRouter(s *Server, limiter *middleware.RateLimiter, logger zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.RequestID(logger))
	router.Use(middleware.RateLimit(limiter))

	router.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	router.HandleFunc("/r6/profiles/{platform}/{username}", s.Profiles).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(s.NotFound)

	return router
}
