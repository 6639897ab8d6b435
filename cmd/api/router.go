package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"creatorhub-backend/internal/shared/middleware"
	"creatorhub-backend/internal/shared/response"
	"creatorhub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	rateLimiter := middleware.NewRateLimiter(c.Config.RateLimit.RPS, c.Config.RateLimit.Burst)

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		rateLimiter.Middleware(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCreatorRoutes(v1, c)
		setupVideoRoutes(v1, c)
		setupDashboardRoutes(v1, c)
		setupExportRoutes(v1, c)
	}

	return router
}

func setupCreatorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	creators := v1.Group("/creators")
	{
		creators.POST("", c.CreatorHandler.Create)
		creators.GET("", c.CreatorHandler.List)
		creators.GET("/niches", c.CreatorHandler.Niches)
		creators.GET("/:id", c.CreatorHandler.GetByID)
		creators.PUT("/:id", c.CreatorHandler.Update)
		creators.DELETE("/:id", c.CreatorHandler.Delete)
	}
}

func setupVideoRoutes(v1 *gin.RouterGroup, c *container.Container) {
	videos := v1.Group("/videos")
	{
		videos.POST("", c.VideoHandler.Create)
		videos.GET("", c.VideoHandler.List)
		videos.GET("/:id", c.VideoHandler.GetByID)
		videos.PUT("/:id", c.VideoHandler.Update)
		videos.DELETE("/:id", c.VideoHandler.Delete)
		videos.POST("/:id/mark-paid", c.VideoHandler.MarkPaid)
	}
}

func setupDashboardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/dashboard", c.DashboardHandler.Overview)
	v1.GET("/dashboard/charts", c.DashboardHandler.Charts)
	v1.GET("/payments", c.DashboardHandler.PaymentsReport)
}

func setupExportRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/export", c.ExportHandler.Export)
}

// healthCheckHandler pings the store (and Redis when enabled) so monitors
// can tell a live process from a healthy one.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now().Format(time.RFC3339),
			})
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now().Format(time.RFC3339),
			})
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   c.Config.App.Version,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
