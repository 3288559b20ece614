package routes

import (
	"github.com/devalexsantos/advlink-sub000/handlers/gallery"
	"github.com/devalexsantos/advlink-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func GalleryRoutes(r *gin.Engine) {
	galleryRoutes := r.Group("/gallery")
	galleryRoutes.Use(middleware.JWTAuth())
	{
		galleryRoutes.GET("", gallery.GetGallery)
		galleryRoutes.POST("", gallery.CreateGalleryItem)
		galleryRoutes.PUT("/reorder", gallery.ReorderGallery)
		galleryRoutes.PUT("/:id", gallery.UpdateGalleryItem)
		galleryRoutes.DELETE("/:id", gallery.DeleteGalleryItem)
	}
}
