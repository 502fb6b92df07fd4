package handlers

import (
	"net/http"

	"taskturf/services/stats"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	DashboardSvc stats.DashboardService
}

func NewStatsHandler(svc stats.DashboardService) *StatsHandler {
	return &StatsHandler{DashboardSvc: svc}
}

// DashboardHandler computes the caller's counters fresh from the ledger.
func (h *StatsHandler) DashboardHandler(c *gin.Context) {
	dashboard, err := h.DashboardSvc.Dashboard(c.Request.Context(), actorID(c), actorRole(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
