package main

import (
	"log"

	"github.com/devalexsantos/advlink-sub000/db"
	_ "github.com/devalexsantos/advlink-sub000/docs"
	"github.com/devalexsantos/advlink-sub000/routes"
	"github.com/devalexsantos/advlink-sub000/utils"

	"github.com/gin-gonic/gin"
)

// @title AdvLink API
// @version 1.0
// @description API for AdvLink, the public page builder for legal professionals
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Image uploads will not work correctly.")
	}

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
