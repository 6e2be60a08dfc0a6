// internal/api/routes/opportunity_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"nextintern-api/internal/api/handlers"
)

// RegisterOpportunityRoutes registers browse, posting and per-listing routes.
// Browse routes take optional auth: anonymous viewers get the public subset,
// signed-in viewers get the full redacted set. Management routes require an
// industry account; save/unsave require a candidate account.
func RegisterOpportunityRoutes(
	rg *gin.RouterGroup,
	opportunityHandler *handlers.OpportunityHandler,
	applicationHandler *handlers.ApplicationHandler,
	savedHandler *handlers.SavedOpportunityHandler,
	authMiddleware gin.HandlerFunc,
	optionalAuthMiddleware gin.HandlerFunc,
	requireCandidate gin.HandlerFunc,
	requireIndustry gin.HandlerFunc,
) {
	opportunities := rg.Group("/opportunities")
	{
		// Browse (public or authenticated)
		opportunities.GET("", optionalAuthMiddleware, opportunityHandler.List)

		// Management (industry only). Registered before /:id so the literal
		// segment wins.
		opportunities.POST("", authMiddleware, requireIndustry, opportunityHandler.Create)
		opportunities.GET("/my", authMiddleware, requireIndustry, opportunityHandler.ListMine)
		opportunities.GET("/my/:id", authMiddleware, requireIndustry, opportunityHandler.GetMine)

		opportunities.GET("/:id", optionalAuthMiddleware, opportunityHandler.GetByID)
		opportunities.PATCH("/:id", authMiddleware, requireIndustry, opportunityHandler.Update)
		opportunities.DELETE("/:id", authMiddleware, requireIndustry, opportunityHandler.Delete)
		opportunities.PATCH("/:id/deactivate", authMiddleware, requireIndustry, opportunityHandler.Deactivate)

		// Applicants for one listing (industry only)
		opportunities.GET("/:id/applications", authMiddleware, requireIndustry, applicationHandler.ListByOpportunity)

		// Bookmarks (candidate only)
		opportunities.POST("/:id/save", authMiddleware, requireCandidate, savedHandler.Save)
		opportunities.DELETE("/:id/save", authMiddleware, requireCandidate, savedHandler.Unsave)
	}
}
