// internal/transport/dto/application_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"nextintern-api/internal/models"
)

// --- Application Request DTOs ---

// ApplyRequest submits a candidacy for an opportunity.
type ApplyRequest struct {
	UserID        uuid.UUID `json:"-"` // Set internally by handler from auth context
	OpportunityID uuid.UUID `json:"opportunity_id" validate:"required"`
	CoverLetter   string    `json:"cover_letter" validate:"omitempty,max=5000"`
}

// WithdrawApplicationRequest retracts the caller's own application.
type WithdrawApplicationRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// UpdateApplicationStatusRequest advances an application through review.
// Only the industry owning the opportunity may call this.
type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID                `json:"-" validate:"required"`
	UserID uuid.UUID                `json:"-"` // Reviewing account, for authorization
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=REVIEWED SHORTLISTED INTERVIEW_SCHEDULED SELECTED REJECTED"`
}

// GetApplicationByIDRequest fetches one application.
type GetApplicationByIDRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// ListMyApplicationsRequest enumerates the caller's applications, optionally
// narrowed to a progress bucket.
type ListMyApplicationsRequest struct {
	UserID uuid.UUID `json:"-"`
	Bucket string    `form:"bucket" validate:"omitempty,oneof=pending in_progress selected closed"`
	Limit  int       `form:"limit,default=10"`
	Offset int       `form:"offset,default=0"`
}

// ListApplicationsByOpportunityRequest enumerates applicants for one of the
// industry's own listings.
type ListApplicationsByOpportunityRequest struct {
	OpportunityID uuid.UUID                 `json:"-" validate:"required"`
	UserID        uuid.UUID                 `json:"-"` // Owning account, for authorization
	Status        *models.ApplicationStatus `form:"status" validate:"omitempty,oneof=PENDING REVIEWED SHORTLISTED INTERVIEW_SCHEDULED SELECTED REJECTED WITHDRAWN"`
	Limit         int                       `form:"limit,default=10"`
	Offset        int                       `form:"offset,default=0"`
}

// --- Application Response DTOs ---

type ApplicationResponse struct {
	ID            uuid.UUID                `json:"id"`
	CandidateID   uuid.UUID                `json:"candidate_id"`
	OpportunityID uuid.UUID                `json:"opportunity_id"`
	Status        models.ApplicationStatus `json:"status"`
	Bucket        string                   `json:"bucket"`
	CoverLetter   string                   `json:"cover_letter,omitempty"`
	AppliedAt     time.Time                `json:"applied_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// EligibilityDenialResponse explains a refused application attempt.
type EligibilityDenialResponse struct {
	Error                 string     `json:"error"`
	Reason                string     `json:"reason"`
	ExistingApplicationID *uuid.UUID `json:"existing_application_id,omitempty"`
	ExistingStatus        string     `json:"existing_status,omitempty"`
}
