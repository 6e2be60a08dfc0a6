// internal/transport/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"nextintern-api/internal/models"
)

// --- Auth Request DTOs ---

// RegisterRequest creates a new account. Candidate accounts need first/last
// name; industry accounts need a company name and sector.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
	UserType models.UserType `json:"user_type" validate:"required,oneof=CANDIDATE INDUSTRY"`

	FirstName string `json:"first_name,omitempty" validate:"required_if=UserType CANDIDATE,omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"required_if=UserType CANDIDATE,omitempty,max=100"`

	CompanyName string `json:"company_name,omitempty" validate:"required_if=UserType INDUSTRY,omitempty,max=200"`
	Industry    string `json:"industry,omitempty" validate:"omitempty,max=100"`
}

// CreateUserRequest is the storage-level account creation request.
type CreateUserRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	UserType models.UserType `json:"user_type" validate:"required,oneof=CANDIDATE INDUSTRY"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SetPremiumRequest changes the account's premium tier. Pointer so an
// explicit false is distinguishable from an absent field.
type SetPremiumRequest struct {
	Premium *bool `json:"premium" validate:"required"`
}

// GetUserByIDRequest fetches an account by id.
type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// GetUserByEmailRequest fetches an account by email.
type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// --- Auth Response DTOs ---

// UserResponse is the account data returned to the client.
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	UserType  models.UserType `json:"user_type"`
	IsPremium bool            `json:"is_premium"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AuthResponse is returned on successful register/login/refresh.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}
