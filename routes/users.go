package routes

import (
	"github.com/devalexsantos/advlink-sub000/handlers/users"
	"github.com/devalexsantos/advlink-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	meRoutes := r.Group("/users/me")
	meRoutes.Use(middleware.JWTAuth())
	{
		meRoutes.GET("", users.GetMe)
		meRoutes.PUT("", users.UpdateMe)
		meRoutes.PUT("/password", users.UpdatePassword)
		meRoutes.POST("/registry-check", users.RegistryCheck)
	}

	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.JWTAuth(), middleware.AdminAuth())
	{
		adminRoutes.GET("/users", users.GetAllUsers)
	}
}
