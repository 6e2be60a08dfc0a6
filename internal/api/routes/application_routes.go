// internal/api/routes/application_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"nextintern-api/internal/api/handlers"
)

// RegisterApplicationRoutes registers all routes related to applications.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler *handlers.ApplicationHandler,
	authMiddleware gin.HandlerFunc,
	requireCandidate gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.POST("", requireCandidate, applicationHandler.Apply)
		applications.GET("/my", requireCandidate, applicationHandler.ListMine)
		applications.GET("/:id", applicationHandler.GetByID) // Either party
		applications.POST("/:id/withdraw", requireCandidate, applicationHandler.Withdraw)
		applications.PATCH("/:id/status", applicationHandler.UpdateStatus) // Owner checked in service
	}
}
