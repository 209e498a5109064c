package http

import (
	"github.com/gin-gonic/gin"

	"github.com/lensmatch/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		lenses := v1.Group("/lenses")
		{
			lenses.GET("", handler.ListLenses)
			lenses.POST("/resolve", handler.ResolveLens)
			lenses.GET("/:id/colors", handler.LensColors)
		}

		prescriptions := v1.Group("/prescriptions")
		{
			prescriptions.POST("/add-tokens", handler.ClassifyAddTokens)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("/quote", handler.QuoteOrder)
		}
	}

	return router
}
