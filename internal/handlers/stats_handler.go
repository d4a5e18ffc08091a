package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/services"
)

type StatsHandler struct {
	service services.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service services.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{service: service, log: log}
}

// @Summary      Task overview
// @Description  Counts over the tasks visible to the caller
// @Tags         Stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /stats/overview [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.service.Overview(c.Request.Context(), actorOf(c))
	if err != nil {
		respondError(c, h.log, "[stats][overview]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
