// internal/api/handlers/candidates.go
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

// CandidateHandler holds dependencies for candidate profile operations.
type CandidateHandler struct {
	service   services.CandidateService
	validator *validator.Validate
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(service services.CandidateService, validate *validator.Validate) *CandidateHandler {
	return &CandidateHandler{
		service:   service,
		validator: validate,
	}
}

// GetMe godoc
// @Summary      Get own candidate profile
// @Description  Returns the authenticated candidate's profile with its skills.
// @Tags         candidates
// @Produce      json
// @Success      200 {object}  dto.CandidateResponse "Profile"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	candidate, skills, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
			return
		}
		log.Printf("Error fetching candidate profile for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, services.MapCandidateToResponse(candidate, skills))
}

// Update godoc
// @Summary      Edit own candidate profile
// @Description  Updates non-nil fields of the authenticated candidate's profile.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile body      dto.UpdateCandidateRequest true "Fields to change"
// @Success      200 {object}  dto.CandidateResponse "Updated profile"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates/me [patch]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	candidate, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
			return
		}
		log.Printf("Error updating candidate profile for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, services.MapCandidateToResponse(candidate, nil))
}

// AddSkill godoc
// @Summary      Add a skill
// @Description  Attaches one skill entry to the authenticated candidate's profile.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        skill body      dto.AddSkillRequest true "Skill details"
// @Success      201 {object}  dto.SkillResponse "Skill added"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      409 {object}  map[string]string "Conflict - Skill already present"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates/me/skills [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddSkill(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	skill, err := h.service.AddSkill(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Skill already present on profile"})
		} else {
			log.Printf("Error adding skill for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add skill"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SkillResponse{
		ID:                skill.ID,
		SkillName:         skill.SkillName,
		Proficiency:       skill.Proficiency,
		YearsOfExperience: skill.YearsOfExperience,
	})
}

// RemoveSkill godoc
// @Summary      Remove a skill
// @Description  Detaches one skill entry from the authenticated candidate's profile.
// @Tags         candidates
// @Produce      json
// @Param        id path string true "Skill ID"
// @Success      204 "Skill removed"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates/me/skills/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) RemoveSkill(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	skillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID format"})
		return
	}

	if err := h.service.RemoveSkill(c.Request.Context(), userID, skillID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
			return
		}
		log.Printf("Error removing skill %s for user %s: %v", skillID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove skill"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Completion godoc
// @Summary      Get profile completion
// @Description  Returns the completion percentage and whether the profile counts as complete. Recomputed on every call.
// @Tags         candidates
// @Produce      json
// @Success      200 {object}  policy.CompletionResult "Completion score"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates/me/completion [get]
// @Security     BearerAuth
func (h *CandidateHandler) Completion(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.service.Completion(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
			return
		}
		log.Printf("Error computing completion for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profile completion"})
		return
	}

	c.JSON(http.StatusOK, result)
}
