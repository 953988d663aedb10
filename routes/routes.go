package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	PingRoutes(r)
	AuthRoutes(r)
	UsersRoutes(r)
	SpecializationsRoutes(r)
	AppointmentsRoutes(r)
	PaymentsRoutes(r)
	ChatRoutes(r)
	VideoRoutes(r)
	UploadsRoutes(r)
	DoctorsRoutes(r)
	RecordsRoutes(r)

	return r
}
