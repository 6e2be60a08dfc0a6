// internal/transport/dto/industry_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateIndustryRequest creates the company profile at signup. AnonymousID
// is generated server-side and never accepted from the client.
type CreateIndustryRequest struct {
	UserID      uuid.UUID `json:"-" validate:"required"`
	CompanyName string    `json:"company_name" validate:"required,max=200"`
	Industry    string    `json:"industry" validate:"omitempty,max=100"`
}

// GetIndustryByUserIDRequest fetches a company profile by account id.
type GetIndustryByUserIDRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// GetIndustryByIDRequest fetches a company profile by id.
type GetIndustryByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// UpdateIndustryRequest is the company settings form. AnonymousID is
// deliberately absent: it is immutable once assigned.
type UpdateIndustryRequest struct {
	UserID          uuid.UUID `json:"-" validate:"required"` // Set internally by handler from auth context
	CompanyName     *string   `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Industry        *string   `json:"industry,omitempty" validate:"omitempty,max=100"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	City            *string   `json:"city,omitempty" validate:"omitempty,max=100"`
	State           *string   `json:"state,omitempty" validate:"omitempty,max=100"`
	Country         *string   `json:"country,omitempty" validate:"omitempty,max=100"`
	Website         *string   `json:"website,omitempty" validate:"omitempty,url"`
	ContactEmail    *string   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ShowCompanyName *bool     `json:"show_company_name,omitempty"`
}

// IndustryResponse is the company profile returned to its owner.
type IndustryResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	CompanyName     string    `json:"company_name"`
	Industry        string    `json:"industry,omitempty"`
	Description     string    `json:"description,omitempty"`
	City            string    `json:"city,omitempty"`
	State           string    `json:"state,omitempty"`
	Country         string    `json:"country,omitempty"`
	Website         string    `json:"website,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	ShowCompanyName bool      `json:"show_company_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
