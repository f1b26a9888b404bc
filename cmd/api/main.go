package main

import (
	"log"
	"os"

	"rage-order-backend/internal/config"
	"rage-order-backend/internal/middleware"
	"rage-order-backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Connect DB
	config.ConnectDB()

	// 3. Init Router
	r := gin.Default()

	// 4. Pasang Middleware Global
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// 5. Setup Routes
	routes.SetupRoutes(r)

	// 6. Health Check
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"message": "Order API backend is running!",
			"version": "1.0.0",
		})
	})

	// 7. Run Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Println("Server berjalan di port " + port)
	r.Run(":" + port)
}
