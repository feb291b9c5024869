package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stat-finder/internal/logging"
	"github.com/preston-bernstein/nba-stat-finder/internal/providers"
)

const internalErrorBody = "internal error"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeError maps a report failure to the relay's response. Upstream query
// errors become 400 with the upstream error list, upstream HTTP failures are
// relayed with their status and body, and anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	if rq, ok := providers.AsRemoteQueryError(err); ok {
		writeText(w, http.StatusBadRequest, rq.Errors)
		return
	}
	if rt, ok := providers.AsRemoteTransportError(err); ok {
		status := rt.StatusCode
		if status < 100 || status > 599 {
			status = http.StatusBadGateway
		}
		writeText(w, status, rt.Body)
		return
	}
	writeText(w, http.StatusInternalServerError, internalErrorBody)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
