package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/services"
)

// RestStatsHandler serves the admin aggregate stats endpoint.
type RestStatsHandler struct {
	statsService services.IStatsService
}

// NewRestStatsHandler creates a new RestStatsHandler.
func NewRestStatsHandler(statsService services.IStatsService) *RestStatsHandler {
	return &RestStatsHandler{statsService: statsService}
}

// GetStats handles GET /api/admin/stats.
func (h *RestStatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
