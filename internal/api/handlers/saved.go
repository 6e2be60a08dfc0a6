// internal/api/handlers/saved.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"nextintern-api/internal/api/middleware"
	"nextintern-api/internal/services"
	"nextintern-api/internal/transport/dto"
)

// SavedOpportunityHandler holds dependencies for bookmark operations.
type SavedOpportunityHandler struct {
	service   services.SavedOpportunityService
	validator *validator.Validate
}

// NewSavedOpportunityHandler creates a new SavedOpportunityHandler.
func NewSavedOpportunityHandler(service services.SavedOpportunityService, validate *validator.Validate) *SavedOpportunityHandler {
	return &SavedOpportunityHandler{
		service:   service,
		validator: validate,
	}
}

// Save godoc
// @Summary      Save an opportunity
// @Description  Bookmarks a listing for the authenticated candidate. Saving is independent of applying.
// @Tags         saved
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Success      201 {object}  dto.SavedOpportunityResponse "Saved"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Already saved"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/{id}/save [post]
// @Security     BearerAuth
func (h *SavedOpportunityHandler) Save(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	opportunityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity ID format"})
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &dto.SaveOpportunityRequest{UserID: userID, OpportunityID: opportunityID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Opportunity already saved"})
		} else {
			log.Printf("Error saving opportunity %s for user %s: %v", opportunityID, userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save opportunity"})
		}
		return
	}

	c.JSON(http.StatusCreated, services.MapSavedToResponse(saved))
}

// Unsave godoc
// @Summary      Unsave an opportunity
// @Description  Removes a bookmark.
// @Tags         saved
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Success      204 "Removed"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/{id}/save [delete]
// @Security     BearerAuth
func (h *SavedOpportunityHandler) Unsave(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	opportunityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity ID format"})
		return
	}

	if err := h.service.Unsave(c.Request.Context(), &dto.UnsaveOpportunityRequest{UserID: userID, OpportunityID: opportunityID}); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
			return
		}
		log.Printf("Error unsaving opportunity %s for user %s: %v", opportunityID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove bookmark"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMine godoc
// @Summary      List saved opportunities
// @Description  Lists the authenticated candidate's bookmarks as redacted views, under the same disclosure rules as browsing.
// @Tags         saved
// @Produce      json
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.OpportunityViewResponse "Saved listings"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /saved [get]
// @Security     BearerAuth
func (h *SavedOpportunityHandler) ListMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListSavedOpportunitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	req.UserID = userID
	req.Premium = middleware.GetViewerFromContext(c).Premium

	views, err := h.service.ListMine(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
			return
		}
		log.Printf("Error listing saved opportunities for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve saved opportunities"})
		return
	}

	responses := make([]dto.OpportunityViewResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, services.MapViewToResponse(view))
	}

	c.JSON(http.StatusOK, responses)
}
