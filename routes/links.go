package routes

import (
	"github.com/devalexsantos/advlink-sub000/handlers/links"
	"github.com/devalexsantos/advlink-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func LinksRoutes(r *gin.Engine) {
	linkRoutes := r.Group("/links")
	linkRoutes.Use(middleware.JWTAuth())
	{
		linkRoutes.GET("", links.GetLinks)
		linkRoutes.POST("", links.CreateLink)
		linkRoutes.PUT("/reorder", links.ReorderLinks)
		linkRoutes.PUT("/:id", links.UpdateLink)
		linkRoutes.DELETE("/:id", links.DeleteLink)
	}
}
