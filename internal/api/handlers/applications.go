// internal/api/handlers/applications.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"nextintern-api/internal/api/middleware"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/services"
	"nextintern-api/internal/transport/dto"
)

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// Apply godoc
// @Summary      Apply to an opportunity
// @Description  Submits an application after the eligibility gate. Denials carry a machine-readable reason; ALREADY_APPLIED includes the existing application's ID.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body      dto.ApplyRequest true "Application details"
// @Success      201 {object}  dto.ApplicationResponse "Application created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  dto.EligibilityDenialResponse "Forbidden - Premium required"
// @Failure      404 {object}  map[string]string "Not Found - Opportunity missing"
// @Failure      409 {object}  dto.EligibilityDenialResponse "Conflict - Closed, deadline passed, or already applied"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	req.UserID = userID

	app, denial, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only candidate accounts can apply"})
			return
		}
		log.Printf("Error applying to opportunity %s: %v", req.OpportunityID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}
	if denial != nil {
		respondDenial(c, denial)
		return
	}

	c.JSON(http.StatusCreated, services.MapApplicationToResponse(app))
}

// respondDenial translates an eligibility denial to the wire. Premium gates
// are 403 with an upgrade hint; state problems (closed, deadline, duplicate)
// are 409.
func respondDenial(c *gin.Context, denial *policy.EligibilityResult) {
	resp := dto.EligibilityDenialResponse{Reason: string(denial.Reason)}

	switch denial.Reason {
	case policy.ReasonPremiumRequired:
		resp.Error = "This opportunity requires a premium subscription"
		c.JSON(http.StatusForbidden, resp)
	case policy.ReasonAlreadyApplied:
		resp.Error = "You already have an active application for this opportunity"
		if denial.ExistingApplicationID != uuid.Nil {
			existingID := denial.ExistingApplicationID
			resp.ExistingApplicationID = &existingID
			resp.ExistingStatus = string(denial.ExistingStatus)
		}
		c.JSON(http.StatusConflict, resp)
	case policy.ReasonDeadlinePassed:
		resp.Error = "The application deadline has passed"
		c.JSON(http.StatusConflict, resp)
	default:
		resp.Error = "This opportunity is no longer accepting applications"
		c.JSON(http.StatusConflict, resp)
	}
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Retracts the caller's own application. Legal from any non-terminal status; the slot can be reapplied to afterwards.
// @Tags         applications
// @Produce      json
// @Param        id path string true "Application ID"
// @Success      200 {object}  dto.ApplicationResponse "Withdrawn application"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the applicant"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Application already settled"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/withdraw [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	app, err := h.service.Withdraw(c.Request.Context(), &dto.WithdrawApplicationRequest{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your application"})
		} else if errors.Is(err, services.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "Application is already settled and cannot be withdrawn"})
		} else {
			log.Printf("Error withdrawing application %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw application"})
		}
		return
	}

	c.JSON(http.StatusOK, services.MapApplicationToResponse(app))
}

// UpdateStatus godoc
// @Summary      Advance an application through review
// @Description  Moves an application along the review pipeline. Only the industry owning the opportunity may call this, and only legal transitions are accepted.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path string true "Application ID"
// @Param        status body      dto.UpdateApplicationStatusRequest true "Target status"
// @Success      200 {object}  dto.ApplicationResponse "Updated application"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the reviewing industry"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Illegal status transition"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
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

	app, err := h.service.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to review this application"})
		} else if errors.Is(err, services.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "Illegal status transition"})
		} else {
			log.Printf("Error updating status of application %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		}
		return
	}

	c.JSON(http.StatusOK, services.MapApplicationToResponse(app))
}

// GetByID godoc
// @Summary      Get one application
// @Description  Retrieves an application visible to either the applicant or the reviewing industry.
// @Tags         applications
// @Produce      json
// @Param        id path string true "Application ID"
// @Success      200 {object}  dto.ApplicationResponse "Application"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	app, err := h.service.GetByID(c.Request.Context(), &dto.GetApplicationByIDRequest{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this application"})
		} else {
			log.Printf("Error fetching application %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, services.MapApplicationToResponse(app))
}

// ListMine godoc
// @Summary      List own applications
// @Description  Lists the authenticated candidate's applications, optionally narrowed to one progress bucket.
// @Tags         applications
// @Produce      json
// @Param        bucket query string false "Progress bucket" Enums(pending, in_progress, selected, closed)
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.ApplicationResponse "Own applications"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListMyApplicationsRequest
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

	req.UserID = userID

	apps, err := h.service.ListMine(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
			return
		}
		log.Printf("Error listing applications for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, services.MapApplicationToResponse(&apps[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// ListByOpportunity godoc
// @Summary      List applicants for an opportunity
// @Description  Lists applications for one of the authenticated industry's listings, oldest first.
// @Tags         applications
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Param        status query string false "Filter by status" Enums(PENDING, REVIEWED, SHORTLISTED, INTERVIEW_SCHEDULED, SELECTED, REJECTED, WITHDRAWN)
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.ApplicationResponse "Applicants"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /opportunities/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByOpportunity(c *gin.Context) {
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

	var req dto.ListApplicationsByOpportunityRequest
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

	req.OpportunityID = opportunityID
	req.UserID = userID

	apps, err := h.service.ListByOpportunity(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this opportunity"})
		} else {
			log.Printf("Error listing applications for opportunity %s: %v", opportunityID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		}
		return
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, services.MapApplicationToResponse(&apps[i]))
	}

	c.JSON(http.StatusOK, responses)
}
