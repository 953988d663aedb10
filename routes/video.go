package routes

import (
	"github.com/Jaydip614/medisync/handlers/video"
	"github.com/Jaydip614/medisync/middleware"

	"github.com/gin-gonic/gin"
)

func VideoRoutes(r *gin.Engine) {
	videoGroup := r.Group("/video")
	videoGroup.Use(middleware.JWTAuth())
	{
		videoGroup.POST("/rooms", video.CreateRoom)
		videoGroup.POST("/token", video.GenerateToken)
	}
}
