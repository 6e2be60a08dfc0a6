// internal/transport/dto/saved_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Saved Opportunity Request DTOs ---

type SaveOpportunityRequest struct {
	UserID        uuid.UUID `json:"-"` // Set internally by handler from auth context
	OpportunityID uuid.UUID `json:"-" validate:"required"`
}

type UnsaveOpportunityRequest struct {
	UserID        uuid.UUID `json:"-"`
	OpportunityID uuid.UUID `json:"-" validate:"required"`
}

type ListSavedOpportunitiesRequest struct {
	UserID  uuid.UUID `json:"-"`
	Premium bool      `json:"-"` // Viewer tier, set by handler from auth claims
	Limit   int       `form:"limit,default=10"`
	Offset  int       `form:"offset,default=0"`
}

// --- Saved Opportunity Response DTOs ---

type SavedOpportunityResponse struct {
	ID            uuid.UUID `json:"id"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	OpportunityID uuid.UUID `json:"opportunity_id"`
	SavedAt       time.Time `json:"saved_at"`
}
