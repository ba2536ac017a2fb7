package http

import (
	"github.com/gin-gonic/gin"
	"github.com/repulens/backend/config"
	"github.com/repulens/backend/internal/infrastructure/ratelimit"
)

// SetupRouter creates and configures the Gin router. A nil limiter disables
// per-client rate limiting.
func SetupRouter(cfg *config.Config, handler *Handler, limiter *ratelimit.Store) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(RateLimitMiddleware(limiter))
	}
	{
		v1.GET("/hello", handler.APIIndex)
		v1.POST("/analyze-reputation", handler.AnalyzeReputation)
		v1.POST("/search-business", handler.SearchBusiness)
		v1.GET("/business-reviews/:dataId", handler.BusinessReviews)
	}

	return router
}
