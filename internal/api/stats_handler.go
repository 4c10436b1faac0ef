package api

import (
	"net/http"

	"github.com/haagahelia/hidb-back/internal/stats"
)

// StatsHandler serves runtime/database statistics
type StatsHandler struct {
	collector *stats.Collector
}

// NewStatsHandler creates a stats handler
func NewStatsHandler(collector *stats.Collector) *StatsHandler {
	return &StatsHandler{collector: collector}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.collector.Collect(r.Context())
	if err != nil {
		http.Error(w, "failed to collect stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
