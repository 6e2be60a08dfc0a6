// internal/api/routes/auth_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"nextintern-api/internal/api/handlers"
)

// RegisterAuthRoutes registers registration, login and session routes.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	authMiddleware gin.HandlerFunc,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", authHandler.GetMe)
		users.PATCH("/me/premium", authHandler.SetPremium)
	}
}
