// internal/api/routes/routes.go
package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nextintern-api/internal/api/handlers"
	"nextintern-api/internal/api/middleware"
	"nextintern-api/internal/app"
	"nextintern-api/internal/models"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	//Create handlers
	authHandler := handlers.NewAuthHandler(app.UserService, app.Validator)
	opportunityHandler := handlers.NewOpportunityHandler(app.OpportunityService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	candidateHandler := handlers.NewCandidateHandler(app.CandidateService, app.Validator)
	industryHandler := handlers.NewIndustryHandler(app.IndustryService, app.Validator)
	savedHandler := handlers.NewSavedOpportunityHandler(app.SavedOpportunityService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)
	optionalAuthMiddleware := middleware.OptionalJWTAuthMiddleware(app.Config.JWT.Secret)
	requireCandidate := middleware.RequireUserType(models.UserTypeCandidate)
	requireIndustry := middleware.RequireUserType(models.UserTypeIndustry)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler, authMiddleware)
	RegisterOpportunityRoutes(apiV1, opportunityHandler, applicationHandler, savedHandler, authMiddleware, optionalAuthMiddleware, requireCandidate, requireIndustry)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware, requireCandidate)
	RegisterProfileRoutes(apiV1, candidateHandler, industryHandler, savedHandler, authMiddleware, requireCandidate, requireIndustry)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	// --- Prometheus metrics ---
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
