package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, set from cmd at startup
var (
	Name    = "Annotate API"
	Version = "dev"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        Name,
			"version":     Version,
			"description": "Frame-accurate media annotation service",
			"status":      "running",
		})
	}
}
