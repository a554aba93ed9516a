package handlers

import (
	"net/http"

	"concierge/models"
	"concierge/services/concierge"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler exposes the concierge chat turn endpoint.
type ChatHandler struct {
	Service concierge.ConciergeService
}

func NewChatHandler(service concierge.ConciergeService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// HandleChat runs one chat turn. The service never fails; a transport
// problem upstream already degraded into the apology response.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}
	if req.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", "text is required")
		return
	}

	// Anonymous visitors get a generated ID so context still sticks
	// within the session.
	if req.ClientID == "" {
		req.ClientID = uuid.New().String()
	}

	resp := h.Service.ProcessMessage(c.Request.Context(), req)
	c.JSON(http.StatusOK, gin.H{
		"clientId": req.ClientID,
		"response": resp,
	})
}
