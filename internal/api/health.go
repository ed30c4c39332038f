package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"github.com/gin-gonic/gin" // Gin web framework
)

// Application identity reported by the health endpoint
const (
	AppName    = "moneyflow"
	AppVersion = "0.1.0"
)

// RootHandler returns a quick liveness message
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Expense Tracker API is running. See /health for status."})
	}
}

// HealthHandler reports service status for health checks
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"app":       AppName,
			"version":   AppVersion,
		})
	}
}
