package routes

import (
	"github.com/Jaydip614/medisync/handlers/chat"
	"github.com/Jaydip614/medisync/middleware"

	"github.com/gin-gonic/gin"
)

func ChatRoutes(r *gin.Engine) {
	chatGroup := r.Group("/chat")
	chatGroup.Use(middleware.JWTAuth())
	{
		chatGroup.GET("/rooms", chat.GetChatRooms)
		chatGroup.GET("/rooms/:roomId/messages", chat.GetMessages)
		chatGroup.POST("/messages", chat.SendMessage)
		chatGroup.POST("/presence", chat.UpdatePresence)
	}
}
