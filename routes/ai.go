package routes

import (
	"github.com/devalexsantos/advlink-sub000/handlers/ai"
	"github.com/devalexsantos/advlink-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func AIRoutes(r *gin.Engine) {
	aiRoutes := r.Group("/ai")
	aiRoutes.Use(middleware.JWTAuth())
	{
		aiRoutes.POST("/bio", ai.SuggestBio)
		aiRoutes.POST("/activity-area", ai.SuggestAreaCopy)
	}
}
