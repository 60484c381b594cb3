package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/gigflow/gigflow-go/config"
	"github.com/gigflow/gigflow-go/db"
	"github.com/gigflow/gigflow-go/middleware"
	"github.com/gigflow/gigflow-go/routes"
	"github.com/gigflow/gigflow-go/websocket"
)

// @title GigFlow API
// @version 1.0
// @description Freelance marketplace: clients post gigs, freelancers bid, one bid gets hired.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	hub := websocket.NewHub()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, hub)

	log.Printf("Server running on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("Server failed:", err)
	}
}
