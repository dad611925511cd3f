package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusController registers the banner and liveness routes. Neither
// touches downstream services.
func StatusController(router *gin.Engine, serviceName string) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": serviceName + " çalışıyor."})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
