package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/nba-stat-finder/internal/http/handlers"
	"github.com/preston-bernstein/nba-stat-finder/internal/http/middleware"
	"github.com/preston-bernstein/nba-stat-finder/internal/metrics"
)

// NewRouter registers the relay routes. Every non-GET request is answered
// with 400 before routing, whatever its path. Any GET path other than
// /health is relayed as a date.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequireGET)

	r.MethodNotAllowed(middleware.RejectRequest)

	r.Get("/health", handler.Health)
	r.Get("/"+handlers.DateParam, handler.DailyReport)
	return r
}
