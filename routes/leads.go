package routes

import (
	"github.com/devalexsantos/advlink-sub000/handlers/leads"
	"github.com/devalexsantos/advlink-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func LeadsRoutes(r *gin.Engine) {
	r.POST("/p/:slug/leads", leads.CreateLead)
	r.GET("/leads", middleware.JWTAuth(), leads.GetLeads)
}
