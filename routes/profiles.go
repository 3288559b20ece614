package routes

import (
	"github.com/devalexsantos/advlink-sub000/handlers/profiles"
	"github.com/devalexsantos/advlink-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func ProfilesRoutes(r *gin.Engine) {
	r.GET("/p/:slug", profiles.GetPublicProfile)

	profileRoutes := r.Group("/profile")
	profileRoutes.Use(middleware.JWTAuth())
	{
		profileRoutes.GET("", profiles.GetMyProfile)
		profileRoutes.PUT("", profiles.UpdateProfile)
		profileRoutes.POST("/photo", profiles.UploadProfilePhoto)
		profileRoutes.POST("/publish", profiles.Publish)
		profileRoutes.POST("/unpublish", profiles.Unpublish)
	}
}
