package main

import (
	"net/http"
	"os"

	"image-cms/config"
	"image-cms/handlers"
	"image-cms/repositories"
	"image-cms/rpc"
	"image-cms/server"
	"image-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db := config.InitDB()

	// Initialize repository and the shared service
	imageRepo := repositories.NewImageRepository(db, cfg.ExportLimit)
	imageService := services.NewImageService(imageRepo)

	// Both adapters share the one service instance
	imageHandler := handlers.NewImageHandler(imageService)
	grpcServer := rpc.NewServer(imageService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		images := v1.Group("/images")
		{
			images.POST("/", imageHandler.CreateImage)
			images.GET("/", imageHandler.GetImages)
			images.GET("/:id", imageHandler.GetImage)
			images.PUT("/:id", imageHandler.UpdateImage)
			images.DELETE("/:id", imageHandler.DeleteImage)
		}

		v1.GET("/export/", imageHandler.ExportImages)
	}

	// Start both listeners
	srv := server.New(cfg.HTTPPort, router, cfg.GRPCPort, grpcServer)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
