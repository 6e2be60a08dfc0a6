// internal/api/handlers/opportunities.go
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

// OpportunityHandler holds dependencies for listing operations.
type OpportunityHandler struct {
	service   services.OpportunityService
	validator *validator.Validate
}

// NewOpportunityHandler creates a new OpportunityHandler.
func NewOpportunityHandler(service services.OpportunityService, validate *validator.Validate) *OpportunityHandler {
	return &OpportunityHandler{
		service:   service,
		validator: validate,
	}
}

// List godoc
// @Summary      Browse opportunities
// @Description  Lists active opportunities redacted for the viewer. Anonymous viewers never see freelancing or premium-only listings; signed-in free viewers see them locked.
// @Tags         opportunities
// @Produce      json
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Param        type query string false "Filter by type" Enums(INTERNSHIP, PROJECT, FREELANCING)
// @Param        work_type query string false "Filter by work arrangement" Enums(REMOTE, ONSITE, HYBRID)
// @Param        category query string false "Filter by category"
// @Param        location query string false "Filter by location substring"
// @Success      200 {array}   dto.OpportunityViewResponse "Redacted listings"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities [get]
func (h *OpportunityHandler) List(c *gin.Context) {
	var req dto.ListOpportunitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	viewer := middleware.GetViewerFromContext(c)

	views, err := h.service.ListViews(c.Request.Context(), &req, viewer)
	if err != nil {
		log.Printf("Error listing opportunities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve opportunities"})
		return
	}

	responses := make([]dto.OpportunityViewResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, services.MapViewToResponse(view))
	}

	c.JSON(http.StatusOK, responses)
}

// GetByID godoc
// @Summary      Get one opportunity
// @Description  Retrieves a single listing redacted for the viewer. Listings the viewer may not see read as 404.
// @Tags         opportunities
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Success      200 {object}  dto.OpportunityViewResponse "Redacted listing"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/{id} [get]
func (h *OpportunityHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity ID format"})
		return
	}

	viewer := middleware.GetViewerFromContext(c)

	view, err := h.service.GetView(c.Request.Context(), id, viewer)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
			return
		}
		log.Printf("Error fetching opportunity %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve opportunity"})
		return
	}

	c.JSON(http.StatusOK, services.MapViewToResponse(*view))
}

// Create godoc
// @Summary      Post a new opportunity
// @Description  Creates a listing owned by the authenticated industry account.
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        opportunity body      dto.CreateOpportunityRequest true "Listing details"
// @Success      201 {object}  dto.OpportunityResponse "Listing created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not an industry account"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities [post]
// @Security     BearerAuth
func (h *OpportunityHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	opp, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Industry account required"})
			return
		}
		log.Printf("Error creating opportunity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create opportunity"})
		return
	}

	c.JSON(http.StatusCreated, services.MapOpportunityToResponse(opp))
}

// ListMine godoc
// @Summary      List own opportunities
// @Description  Lists the authenticated industry's listings, unredacted, including counters.
// @Tags         opportunities
// @Produce      json
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Param        active_only query bool false "Only active listings"
// @Success      200 {array}   dto.OpportunityResponse "Own listings"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/my [get]
// @Security     BearerAuth
func (h *OpportunityHandler) ListMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListOpportunitiesByIndustryRequest
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

	opps, err := h.service.ListMine(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Industry account required"})
			return
		}
		log.Printf("Error listing own opportunities for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve opportunities"})
		return
	}

	responses := make([]dto.OpportunityResponse, 0, len(opps))
	for i := range opps {
		responses = append(responses, services.MapOpportunityToResponse(&opps[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// GetMine godoc
// @Summary      Get one owned opportunity
// @Description  Retrieves a single owned listing, unredacted.
// @Tags         opportunities
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Success      200 {object}  dto.OpportunityResponse "Own listing"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/my/{id} [get]
// @Security     BearerAuth
func (h *OpportunityHandler) GetMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity ID format"})
		return
	}

	opp, err := h.service.GetMine(c.Request.Context(), userID, id)
	if err != nil {
		h.respondOwnershipError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, services.MapOpportunityToResponse(opp))
}

// Update godoc
// @Summary      Edit an opportunity
// @Description  Updates non-nil fields of an owned listing.
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Param        opportunity body      dto.UpdateOpportunityRequest true "Fields to change"
// @Success      200 {object}  dto.OpportunityResponse "Updated listing"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/{id} [patch]
// @Security     BearerAuth
func (h *OpportunityHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity ID format"})
		return
	}

	var req dto.UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	req.ID = id
	req.UserID = userID

	opp, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.respondOwnershipError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, services.MapOpportunityToResponse(opp))
}

// Deactivate godoc
// @Summary      Close an opportunity
// @Description  Marks a listing inactive so it stops accepting applications, keeping its history.
// @Tags         opportunities
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Success      200 {object}  dto.OpportunityResponse "Closed listing"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/{id}/deactivate [patch]
// @Security     BearerAuth
func (h *OpportunityHandler) Deactivate(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity ID format"})
		return
	}

	opp, err := h.service.Deactivate(c.Request.Context(), userID, id)
	if err != nil {
		h.respondOwnershipError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, services.MapOpportunityToResponse(opp))
}

// Delete godoc
// @Summary      Delete an opportunity
// @Description  Removes an owned listing entirely.
// @Tags         opportunities
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Success      204 "Deleted"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Active applications exist"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/{id} [delete]
// @Security     BearerAuth
func (h *OpportunityHandler) Delete(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &dto.DeleteOpportunityRequest{ID: id, UserID: userID}); err != nil {
		h.respondOwnershipError(c, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OpportunityHandler) respondOwnershipError(c *gin.Context, id uuid.UUID, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
	} else if errors.Is(err, services.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this opportunity"})
	} else if errors.Is(err, services.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "Opportunity has active applications; deactivate it instead"})
	} else {
		log.Printf("Error operating on opportunity %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
