package routes

import (
	"github.com/Jaydip614/medisync/handlers/appointments"
	"github.com/Jaydip614/medisync/middleware"

	"github.com/gin-gonic/gin"
)

func AppointmentsRoutes(r *gin.Engine) {
	appointmentsGroup := r.Group("/appointments")
	appointmentsGroup.Use(middleware.JWTAuth())
	{
		appointmentsGroup.GET("", appointments.GetAppointments)
		appointmentsGroup.POST("", appointments.BookAppointment)
		appointmentsGroup.PUT("/:id", appointments.UpdateAppointment)
		appointmentsGroup.DELETE("/:id", appointments.DeleteAppointment)
	}
}
