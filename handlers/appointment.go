package handlers

import (
	"errors"
	"net/http"

	"concierge/models"
	"concierge/services/scheduling"
	"concierge/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the availability and booking-lifecycle
// endpoints shared by the chatbot widget and the standalone wizard.
type AppointmentHandler struct {
	Service scheduling.SchedulingService
}

func NewAppointmentHandler(service scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// actorFrom builds the lifecycle actor from the auth middleware context.
func actorFrom(c *gin.Context) scheduling.Actor {
	actor := scheduling.Actor{}
	if id, exists := c.Get("clientID"); exists {
		if s, ok := id.(string); ok {
			actor.ID = s
		}
	}
	if admin, exists := c.Get("isAdmin"); exists {
		if b, ok := admin.(bool); ok {
			actor.Admin = b
		}
	}
	return actor
}

// GetSlotsHandler returns the free slots for a date.
func (h *AppointmentHandler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date", "query parameter date=YYYY-MM-DD is required")
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateHandler books a slot for the authenticated client.
func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment input", err.Error())
		return
	}
	input.ClientID = actorFrom(c).ID

	appt, err := h.Service.CreateAppointment(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, scheduling.ErrSlotUnavailable) {
			// Recoverable: the widget offers another slot.
			c.JSON(http.StatusConflict, gin.H{
				"error": "slot no longer available",
				"hint":  "pick another time",
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create appointment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListHandler returns the authenticated client's own appointments.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	actor := actorFrom(c)
	appts, err := h.Service.GetClientAppointments(c.Request.Context(), actor.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, appts)
}

// CancelHandler cancels an appointment (owner or admin).
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	h.transition(c, models.AppointmentCancelled)
}

// ConfirmHandler confirms a pending appointment (admin only).
func (h *AppointmentHandler) ConfirmHandler(c *gin.Context) {
	h.transition(c, models.AppointmentConfirmed)
}

func (h *AppointmentHandler) transition(c *gin.Context, status models.AppointmentStatus) {
	id := c.Param("id")
	appt, err := h.Service.UpdateAppointmentStatus(c.Request.Context(), id, status, actorFrom(c))
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrNotAllowed):
			utils.JSONError(c, http.StatusForbidden, "Transition not allowed", err.Error())
		case errors.Is(err, scheduling.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "Invalid transition", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update appointment", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleHandler moves an appointment to a new slot and resets it to
// pending.
func (h *AppointmentHandler) RescheduleHandler(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reschedule input", err.Error())
		return
	}

	appt, err := h.Service.RescheduleAppointment(c.Request.Context(), id, input.Date, input.Time, actorFrom(c))
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "slot no longer available",
				"hint":  "pick another time",
			})
		case errors.Is(err, scheduling.ErrNotAllowed):
			utils.JSONError(c, http.StatusForbidden, "Transition not allowed", err.Error())
		case errors.Is(err, scheduling.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "Invalid transition", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to reschedule appointment", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}
