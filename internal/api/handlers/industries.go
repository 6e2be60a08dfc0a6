// internal/api/handlers/industries.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"nextintern-api/internal/api/middleware"
	"nextintern-api/internal/services"
	"nextintern-api/internal/transport/dto"
)

// IndustryHandler holds dependencies for company profile operations.
type IndustryHandler struct {
	service   services.IndustryService
	validator *validator.Validate
}

// NewIndustryHandler creates a new IndustryHandler.
func NewIndustryHandler(service services.IndustryService, validate *validator.Validate) *IndustryHandler {
	return &IndustryHandler{
		service:   service,
		validator: validate,
	}
}

// GetMe godoc
// @Summary      Get own company profile
// @Description  Returns the authenticated industry's profile, including the disclosure preference.
// @Tags         industries
// @Produce      json
// @Success      200 {object}  dto.IndustryResponse "Profile"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /industries/me [get]
// @Security     BearerAuth
func (h *IndustryHandler) GetMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	industry, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company profile not found"})
			return
		}
		log.Printf("Error fetching company profile for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, services.MapIndustryToResponse(industry))
}

// Update godoc
// @Summary      Edit own company profile
// @Description  Updates non-nil fields of the authenticated industry's profile. Flipping show_company_name changes disclosure on all of the company's listings immediately.
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        profile body      dto.UpdateIndustryRequest true "Fields to change"
// @Success      200 {object}  dto.IndustryResponse "Updated profile"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /industries/me [patch]
// @Security     BearerAuth
func (h *IndustryHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	industry, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company profile not found"})
			return
		}
		log.Printf("Error updating company profile for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, services.MapIndustryToResponse(industry))
}
