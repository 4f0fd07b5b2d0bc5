package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "pharmacology-gateway/docs"
	"pharmacology-gateway/internal/config"
	"pharmacology-gateway/internal/handlers"
	"pharmacology-gateway/internal/upstream"
)

// @title Pharmacology Gateway API
// @version 1.0
// @description REST gateway mirroring the Guide to Pharmacology reference database. Every call translates into one upstream GET and relays the JSON back verbatim, or persists it to a file.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}

	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	gatewayAPI := handlers.NewAPI(client)

	router := gin.Default()
	router.Use(handlers.RequestID())

	gatewayAPI.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting pharmacology gateway on %s (upstream %s)...", addr, cfg.UpstreamBaseURL)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
