package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the item operations and the health check
func SetupRoutes(router *gin.Engine, itemHandler *ItemHandler) {
	router.GET("/health", func(c *gin.Context) {
		if err := itemHandler.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "items-api",
			"timestamp": time.Now().UTC(),
		})
	})

	items := router.Group("/items")
	{
		items.POST("", Gin(itemHandler.HandleCreate))
		items.GET("/:id", Gin(itemHandler.HandleGet))
		items.PUT("/:id", Gin(itemHandler.HandleUpdate))
		items.DELETE("/:id", Gin(itemHandler.HandleDelete))
	}
}
