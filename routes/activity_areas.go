package routes

import (
	"github.com/devalexsantos/advlink-sub000/handlers/activityareas"
	"github.com/devalexsantos/advlink-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func ActivityAreasRoutes(r *gin.Engine) {
	areaRoutes := r.Group("/activity-areas")
	areaRoutes.Use(middleware.JWTAuth())
	{
		areaRoutes.GET("", activityareas.GetActivityAreas)
		areaRoutes.POST("", activityareas.CreateActivityArea)
		areaRoutes.PUT("/reorder", activityareas.ReorderActivityAreas)
		areaRoutes.PUT("/:id", activityareas.UpdateActivityArea)
		areaRoutes.DELETE("/:id", activityareas.DeleteActivityArea)
	}
}
