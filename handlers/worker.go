package handlers

import (
	"net/http"
	"strconv"

	"taskturf/models"
	"taskturf/services/matching"
	"taskturf/utils"

	"github.com/gin-gonic/gin"
)

// WorkerHandler serves worker discovery for customers.
type WorkerHandler struct {
	MatchingSvc matching.MatchingService
}

func NewWorkerHandler(svc matching.MatchingService) *WorkerHandler {
	return &WorkerHandler{MatchingSvc: svc}
}

// MatchCandidatesHandler returns the best-ranked eligible workers for a
// service type and budget.
func (h *WorkerHandler) MatchCandidatesHandler(c *gin.Context) {
	serviceType := c.Query("service")
	if serviceType == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "query parameter 'service' is required")
		return
	}
	budget, err := strconv.ParseFloat(c.DefaultQuery("budget", "0"), 64)
	if err != nil || budget < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "query parameter 'budget' must be a non-negative number")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	candidates, err := h.MatchingSvc.TopCandidates(c.Request.Context(), serviceType, budget, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if candidates == nil {
		candidates = []models.WorkerCandidate{}
	}
	c.JSON(http.StatusOK, gin.H{"workers": candidates})
}
