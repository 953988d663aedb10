package routes

import (
	"github.com/Jaydip614/medisync/handlers/doctors"
	"github.com/Jaydip614/medisync/middleware"
	"github.com/Jaydip614/medisync/models"

	"github.com/gin-gonic/gin"
)

func DoctorsRoutes(r *gin.Engine) {
	dashboardGroup := r.Group("/doctors")
	dashboardGroup.Use(middleware.JWTAuth(), middleware.RoleAuth(models.DoctorRole))
	{
		dashboardGroup.GET("/appointments/upcoming", doctors.GetUpcomingAppointments)
		dashboardGroup.GET("/patients/summaries", doctors.GetPatientSummaries)
	}
}
