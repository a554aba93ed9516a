package handlers

import (
	"net/http"

	"concierge/models"
	"concierge/services/scheduling"
	"concierge/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the admin schedule-settings endpoints.
type ScheduleHandler struct {
	Service scheduling.SchedulingService
}

func NewScheduleHandler(service scheduling.SchedulingService) *ScheduleHandler {
	return &ScheduleHandler{Service: service}
}

// GetSettingsHandler returns the current availability configuration.
func (h *ScheduleHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Service.GetScheduleSettings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load schedule settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler validates and stores the availability configuration.
func (h *ScheduleHandler) UpdateSettingsHandler(c *gin.Context) {
	var settings models.ScheduleSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule settings", err.Error())
		return
	}

	if err := h.Service.SaveScheduleSettings(c.Request.Context(), settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to save schedule settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}
