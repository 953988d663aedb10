package ping

import (
	"net/http"

	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Description Liveness probe
// @Tags ping
// @Produce json
// @Success 200 {object} utils.Response
// @Router /ping [get]
func Ping(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "Ping successful", gin.H{
		"message": "pong",
	})
}
