// internal/api/handlers/health.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary      Health check
// @Description  Reports whether the API process is up.
// @Tags         health
// @Produce      json
// @Success      200 {object}  map[string]string "Service healthy"
// @Router       /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "nextintern-api",
	})
}
