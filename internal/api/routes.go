package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Copy Generation ---
	copyGroup := router.Group("/copy")
	{
		copyGroup.POST("/generate", h.GenerateCopy) // Run the full pipeline for a request
		copyGroup.GET("/runs/:id", h.GetRun)        // Fetch a previously exported run
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
