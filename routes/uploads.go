package routes

import (
	"github.com/Jaydip614/medisync/handlers/uploads"
	"github.com/Jaydip614/medisync/middleware"

	"github.com/gin-gonic/gin"
)

func UploadsRoutes(r *gin.Engine) {
	uploadsGroup := r.Group("/uploads")
	uploadsGroup.Use(middleware.JWTAuth())
	{
		uploadsGroup.POST("", uploads.UploadFile)
	}
}
