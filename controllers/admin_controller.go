package controllers

import (
	"net/http"

	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController serves the dashboard counters and the audit trail.
type AdminController struct {
	Stats *services.StatsService
	Logs  *services.AdminLogService
}

func NewAdminController(stats *services.StatsService, logs *services.AdminLogService) *AdminController {
	return &AdminController{Stats: stats, Logs: logs}
}

// GET /api/admin/stats
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.Stats.Get(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/admin/logs?adminId=
func (ac *AdminController) ListLogs(c *gin.Context) {
	adminID, ok := parseOptionalID(c, "adminId")
	if !ok {
		return
	}

	logs, err := ac.Logs.List(c.Request.Context(), adminID)
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch admin logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
