package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"publications-backend/internal/shared/middleware"
	"publications-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicationRoutes(v1, c)
	}

	return router
}

// ========================================
// PUBLICATION ROUTES
// ========================================
func setupPublicationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	publications := v1.Group("/publications")
	{
		publications.POST("", c.PublicationHandler.Create)
		publications.GET("", c.PublicationHandler.List)
		publications.GET("/search", c.PublicationHandler.Search)
		publications.GET("/:id", c.PublicationHandler.GetByID)
		publications.PATCH("/:id/status", c.PublicationHandler.UpdateStatus)
		publications.DELETE("/:id", c.PublicationHandler.Delete)
		publications.GET("/author/:authorId", c.PublicationHandler.ListByAuthor)
		publications.GET("/status/:status", c.PublicationHandler.ListByStatus)

		stats := publications.Group("/stats")
		{
			stats.GET("/total", c.PublicationHandler.StatsTotal)
			stats.GET("/by-status/:status", c.PublicationHandler.StatsByStatus)
			stats.GET("/by-author/:authorId", c.PublicationHandler.StatsByAuthor)
		}
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		dbStatus := "up"
		httpStatus := http.StatusOK
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
			httpStatus = http.StatusServiceUnavailable
		}

		// Redis is optional; report but never fail the check on it.
		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "degraded"
		}

		status := "up"
		if dbStatus != "up" {
			status = "down"
		}

		ctx.JSON(httpStatus, gin.H{
			"status":      status,
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"database":    dbStatus,
			"cache":       cacheStatus,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
