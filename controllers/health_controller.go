package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Weight Tracker API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Weight Tracker API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":   "/api/health",
			"foods":    "/api/foods",
			"dailyLog": "/api/daily-log",
			"weight":   "/api/weight",
		},
	})
}
