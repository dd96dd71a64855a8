package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/xosoviet/xoso-backend/internal/config"
	"github.com/xosoviet/xoso-backend/internal/handlers"
	"github.com/xosoviet/xoso-backend/internal/middleware"
)

// HandlerDependencies holds the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler   *handlers.AuthHandler
	ResultHandler *handlers.ResultHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	// Create router
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
		}

		// Result routes
		public.GET("/results", deps.ResultHandler.GetResults)
		public.GET("/results/history", deps.ResultHandler.GetHistory)
		public.GET("/schedule/:day", deps.ResultHandler.GetSchedule)
	}

	// Protected routes
	protected := router.Group("/api/v1/admin")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/auth/register", deps.AuthHandler.Register)
		protected.POST("/results", deps.ResultHandler.PublishResult)

		// Cache administration
		protected.GET("/cache", deps.ResultHandler.GetCacheStats)
		protected.DELETE("/cache", deps.ResultHandler.ClearCache)
	}

	return router
}
