package routes

import (
	"github.com/Jaydip614/medisync/handlers/users"
	"github.com/Jaydip614/medisync/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	usersGroup := r.Group("/users")
	usersGroup.Use(middleware.JWTAuth())
	{
		usersGroup.GET("/me", users.GetCurrentUser)
		usersGroup.PUT("/me", users.UpdateProfile)
	}

	doctorsGroup := r.Group("/doctors")
	doctorsGroup.Use(middleware.JWTAuth())
	{
		doctorsGroup.GET("", users.GetDoctors)
	}
}
