// internal/api/routes/profile_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"nextintern-api/internal/api/handlers"
)

// RegisterProfileRoutes registers the candidate and industry profile routes
// plus the saved-listings view.
func RegisterProfileRoutes(
	rg *gin.RouterGroup,
	candidateHandler *handlers.CandidateHandler,
	industryHandler *handlers.IndustryHandler,
	savedHandler *handlers.SavedOpportunityHandler,
	authMiddleware gin.HandlerFunc,
	requireCandidate gin.HandlerFunc,
	requireIndustry gin.HandlerFunc,
) {
	candidates := rg.Group("/candidates")
	candidates.Use(authMiddleware, requireCandidate)
	{
		candidates.GET("/me", candidateHandler.GetMe)
		candidates.PATCH("/me", candidateHandler.Update)
		candidates.GET("/me/completion", candidateHandler.Completion)
		candidates.POST("/me/skills", candidateHandler.AddSkill)
		candidates.DELETE("/me/skills/:id", candidateHandler.RemoveSkill)
	}

	industries := rg.Group("/industries")
	industries.Use(authMiddleware, requireIndustry)
	{
		industries.GET("/me", industryHandler.GetMe)
		industries.PATCH("/me", industryHandler.Update)
	}

	saved := rg.Group("/saved")
	saved.Use(authMiddleware, requireCandidate)
	{
		saved.GET("", savedHandler.ListMine)
	}
}
