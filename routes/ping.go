package routes

import (
	"github.com/Jaydip614/medisync/handlers/ping"

	"github.com/gin-gonic/gin"
)

func PingRoutes(r *gin.Engine) {
	r.GET("/ping", ping.Ping)
}
