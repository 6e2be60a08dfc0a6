// internal/transport/dto/opportunity_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"nextintern-api/internal/models"
)

// --- Opportunity Request DTOs ---

// CreateOpportunityRequest posts a new listing for the authenticated industry.
type CreateOpportunityRequest struct {
	IndustryID          uuid.UUID              `json:"-"` // Set internally by handler from auth context
	Title               string                 `json:"title" validate:"required,max=200"`
	Description         string                 `json:"description" validate:"required,max=10000"`
	Type                models.OpportunityType `json:"type" validate:"required,oneof=INTERNSHIP PROJECT FREELANCING"`
	WorkType            models.WorkType        `json:"work_type" validate:"required,oneof=REMOTE ONSITE HYBRID"`
	Category            string                 `json:"category" validate:"required,max=100"`
	Location            string                 `json:"location" validate:"omitempty,max=200"`
	Stipend             *float64               `json:"stipend,omitempty" validate:"omitempty,gte=0"`
	Skills              []string               `json:"skills" validate:"omitempty,dive,max=100"`
	IsPremiumOnly       bool                   `json:"is_premium_only"`
	ApplicationDeadline *time.Time             `json:"application_deadline,omitempty"`
	StartDate           *time.Time             `json:"start_date,omitempty"`
}

// GetOpportunityByIDRequest fetches one listing.
type GetOpportunityByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListOpportunitiesRequest enumerates listings with filters. PublicOnly is
// set internally for unauthenticated browse: it excludes freelancing and
// premium-only listings at the query level so they are never enumerated.
type ListOpportunitiesRequest struct {
	Limit      int                     `form:"limit,default=10"`
	Offset     int                     `form:"offset,default=0"`
	Type       *models.OpportunityType `form:"type" validate:"omitempty,oneof=INTERNSHIP PROJECT FREELANCING"`
	WorkType   *models.WorkType        `form:"work_type" validate:"omitempty,oneof=REMOTE ONSITE HYBRID"`
	Category   *string                 `form:"category" validate:"omitempty,max=100"`
	Location   *string                 `form:"location" validate:"omitempty,max=200"`
	PublicOnly bool                    `form:"-" json:"-"`
}

// ListOpportunitiesByIndustryRequest enumerates an industry's own listings.
type ListOpportunitiesByIndustryRequest struct {
	IndustryID uuid.UUID `json:"-" validate:"required"` // Set internally by handler
	Limit      int       `form:"limit,default=10"`
	Offset     int       `form:"offset,default=0"`
	ActiveOnly bool      `form:"active_only"`
}

// UpdateOpportunityRequest edits a listing. Only non-nil fields are written.
type UpdateOpportunityRequest struct {
	ID                  uuid.UUID  `json:"-" validate:"required"`
	UserID              uuid.UUID  `json:"-"` // Owning account, for authorization
	Title               *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,max=10000"`
	Category            *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Location            *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	Stipend             *float64   `json:"stipend,omitempty" validate:"omitempty,gte=0"`
	Skills              []string   `json:"skills,omitempty" validate:"omitempty,dive,max=100"`
	IsActive            *bool      `json:"is_active,omitempty"`
	IsPremiumOnly       *bool      `json:"is_premium_only,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
}

// DeleteOpportunityRequest removes a listing.
type DeleteOpportunityRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// --- Opportunity Response DTOs ---

// OpportunityResponse is the owner-facing listing representation.
type OpportunityResponse struct {
	ID                  uuid.UUID              `json:"id"`
	IndustryID          uuid.UUID              `json:"industry_id"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	Type                models.OpportunityType `json:"type"`
	WorkType            models.WorkType        `json:"work_type"`
	Category            string                 `json:"category"`
	Location            string                 `json:"location,omitempty"`
	Stipend             *float64               `json:"stipend,omitempty"`
	Skills              []string               `json:"skills"`
	IsActive            bool                   `json:"is_active"`
	IsPremiumOnly       bool                   `json:"is_premium_only"`
	ApplicationCount    int                    `json:"application_count"`
	ViewCount           int                    `json:"view_count"`
	ApplicationDeadline *time.Time             `json:"application_deadline,omitempty"`
	StartDate           *time.Time             `json:"start_date,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// OpportunityViewResponse is the candidate/public-facing representation:
// the listing plus the disclosure decision for this viewer and, for
// authenticated candidates, their interaction markers.
type OpportunityViewResponse struct {
	ID                  uuid.UUID              `json:"id"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	Type                models.OpportunityType `json:"type"`
	WorkType            models.WorkType        `json:"work_type"`
	Category            string                 `json:"category"`
	Location            string                 `json:"location,omitempty"`
	Stipend             *float64               `json:"stipend,omitempty"`
	Skills              []string               `json:"skills"`
	IsPremiumOnly       bool                   `json:"is_premium_only"`
	ApplicationDeadline *time.Time             `json:"application_deadline,omitempty"`
	StartDate           *time.Time             `json:"start_date,omitempty"`

	DisplayName        string `json:"display_name"`
	ShowDetails        bool   `json:"show_details"`
	CanApply           bool   `json:"can_apply"`
	CompanySector      string `json:"company_sector,omitempty"`
	CompanyVerified    bool   `json:"company_verified"`
	CompanyDescription string `json:"company_description,omitempty"`
	CompanyCity        string `json:"company_city,omitempty"`
	CompanyState       string `json:"company_state,omitempty"`
	CompanyCountry     string `json:"company_country,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanyContact     string `json:"company_contact,omitempty"`

	Saved bool `json:"saved"`
}
