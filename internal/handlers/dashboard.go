package handlers

import (
	"net/http"

	"github.com/hearingclinic/admin-api/internal/services"
)

type DashboardHandler struct {
	statsService *services.StatsService
}

func NewDashboardHandler(statsService *services.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// Stats returns the aggregate dashboard counts.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching dashboard stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
