package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-store/internal/repo"
)

// GetDashboardMetricsHandler summarizes stock levels and movement activity.
// @Summary Dashboard metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	m, err := repo.ComputeMetrics(s.inv, s.movements, s.threshold)
	s.mu.Unlock()

	if err != nil {
		s.log.Errorw("Failed to compute metrics", "error", err)
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, m); err != nil {
		s.log.Errorw("Failed to write JSON response", "error", err)
	}
}
