package controllers

import (
	"net/http"
	"strings"

	"studio-backend/models"
	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Settings *services.SettingsService
	Logs     *services.AdminLogService
}

func NewSettingsController(settings *services.SettingsService, logs *services.AdminLogService) *SettingsController {
	return &SettingsController{Settings: settings, Logs: logs}
}

type studioSettingsPayload struct {
	Name    string `json:"name" binding:"max=255"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"max=50"`
	Email   string `json:"email" binding:"omitempty,email,max=150"`
	Website string `json:"website" binding:"omitempty,url,max=255"`
	Logo    string `json:"logo" binding:"max=255"`
}

// GET /api/settings
func (sc *SettingsController) Get(c *gin.Context) {
	setting, err := sc.Settings.Get(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch studio settings")
		return
	}
	c.JSON(http.StatusOK, setting)
}

// PUT /api/admin/settings
func (sc *SettingsController) Update(c *gin.Context) {
	var payload studioSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid studio settings")
		return
	}

	setting, err := sc.Settings.Save(c.Request.Context(), models.StudioSetting{
		Name:    strings.TrimSpace(payload.Name),
		Address: strings.TrimSpace(payload.Address),
		Phone:   strings.TrimSpace(payload.Phone),
		Email:   strings.TrimSpace(payload.Email),
		Website: strings.TrimSpace(payload.Website),
		Logo:    strings.TrimSpace(payload.Logo),
	})
	if err != nil {
		utils.RespondError(c, err, "Failed to save studio settings")
		return
	}

	recordAdminAction(c, sc.Logs, "settings.update", nil)
	c.JSON(http.StatusOK, setting)
}
