package routes

import (
	"github.com/Jaydip614/medisync/handlers/specializations"
	"github.com/Jaydip614/medisync/middleware"
	"github.com/Jaydip614/medisync/models"

	"github.com/gin-gonic/gin"
)

func SpecializationsRoutes(r *gin.Engine) {
	specializationsGroup := r.Group("/specializations")
	{
		specializationsGroup.GET("", specializations.GetSpecializations)
		specializationsGroup.POST("", middleware.JWTAuth(), middleware.RoleAuth(models.AdminRole), specializations.CreateSpecialization)
	}
}
