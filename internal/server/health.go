package server

import (
	"database/sql"
	"net/http"

	"github.com/charmbracelet/log"
)

// HealthHandler serves the liveness probe and the backing-store probe.
type HealthHandler struct {
	db     *sql.DB
	logger *log.Logger
}

// NewHealthHandler creates a HealthHandler; db may be nil when the service
// runs without a cache database.
func NewHealthHandler(db *sql.DB, logger *log.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{
		"GET /health",
		"GET /db-health",
	}
}

// ServeHTTP answers health probes.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/health":
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case "/db-health":
		if h.db == nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "error", "detail": "no database configured"})
			return
		}
		if err := h.db.Ping(); err != nil {
			h.logger.Error("database health check failed", "err", err)
			writeJSON(w, http.StatusOK, map[string]string{"status": "error", "detail": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	default:
		http.NotFound(w, r)
	}
}
