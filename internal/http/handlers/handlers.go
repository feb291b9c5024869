package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	domainreport "github.com/preston-bernstein/nba-stat-finder/internal/domain/report"
	"github.com/preston-bernstein/nba-stat-finder/internal/logging"
)

// DateParam is the chi wildcard holding everything after the leading slash.
const DateParam = "*"

// Reporter builds the summary for a date.
type Reporter interface {
	Build(ctx context.Context, date string) (domainreport.DailySummary, error)
}

// Handler wires HTTP routes to the report service.
type Handler struct {
	reports Reporter
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(reports Reporter, logger *slog.Logger) *Handler {
	return &Handler{reports: reports, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeText(w, http.StatusServiceUnavailable, "shutting down")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, loggerFromContext(r, h.logger))
}

// DailyReport answers GET /{date} with the plain-text summary for that day.
// The remainder of the path is forwarded upstream as given, slashes and all;
// the upstream API validates it.
func (h *Handler) DailyReport(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, DateParam)
	logger := loggerFromContext(r, h.logger)

	summary, err := h.reports.Build(r.Context(), date)
	if err != nil {
		logging.Warn(logger, "daily report failed",
			slog.String(logging.FieldDate, date),
			slog.Any("error", err),
		)
		writeError(w, err)
		return
	}

	logging.Info(logger, "daily report served",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(summary.GameLines)),
	)
	writeText(w, http.StatusOK, summary.Text())
}
