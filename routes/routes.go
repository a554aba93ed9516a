package routes

import (
	"net/http"
	"time"

	"concierge/handlers"
	"concierge/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route table needs.
type HandlerBundle struct {
	Chat        *handlers.ChatHandler
	Appointment *handlers.AppointmentHandler
	Schedule    *handlers.ScheduleHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "concierge up")
	})

	ai := r.Group("/api/ai")
	{
		ai.POST("/chat", hb.Chat.HandleChat)
	}

	appts := r.Group("/api/appointments")
	{
		// Availability is public: the booking wizard probes it before
		// any identity exists.
		appts.GET("/slots", hb.Appointment.GetSlotsHandler)

		authed := appts.Group("", middleware.ClientAuthMiddleware())
		{
			authed.POST("", hb.Appointment.CreateHandler)
			authed.GET("", hb.Appointment.ListHandler)
			authed.PUT("/:id/cancel", hb.Appointment.CancelHandler)
			authed.PUT("/:id/reschedule", hb.Appointment.RescheduleHandler)
		}

		appts.PUT("/:id/confirm", middleware.AdminAuthMiddleware(), hb.Appointment.ConfirmHandler)
	}

	admin := r.Group("/api/admin", middleware.AdminAuthMiddleware())
	{
		admin.GET("/schedule-settings", hb.Schedule.GetSettingsHandler)
		admin.PUT("/schedule-settings", hb.Schedule.UpdateSettingsHandler)
	}
}
