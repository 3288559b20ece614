package routes

import (
	"github.com/devalexsantos/advlink-sub000/handlers/billing"
	"github.com/devalexsantos/advlink-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func BillingRoutes(r *gin.Engine) {
	billingRoutes := r.Group("/billing")
	billingRoutes.Use(middleware.JWTAuth())
	{
		billingRoutes.POST("/checkout", billing.Checkout)
		billingRoutes.GET("/status", billing.Status)
		billingRoutes.POST("/cancel", billing.Cancel)
		billingRoutes.POST("/reactivate", billing.Reactivate)
		billingRoutes.GET("/invoices", billing.Invoices)
	}
	r.POST("/webhooks/stripe", billing.StripeWebhook)
}
