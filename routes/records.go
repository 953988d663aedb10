package routes

import (
	"github.com/Jaydip614/medisync/handlers/records"
	"github.com/Jaydip614/medisync/middleware"
	"github.com/Jaydip614/medisync/models"

	"github.com/gin-gonic/gin"
)

func RecordsRoutes(r *gin.Engine) {
	recordsGroup := r.Group("/records")
	recordsGroup.Use(middleware.JWTAuth())
	{
		recordsGroup.GET("", records.GetMedicalRecords)
		recordsGroup.GET("/prescriptions", records.GetPrescriptions)
		recordsGroup.POST("", middleware.RoleAuth(models.DoctorRole), records.CreateMedicalRecord)
	}
}
