// internal/transport/dto/candidate_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"nextintern-api/internal/models"
)

// CreateCandidateRequest creates the candidate profile at signup.
type CreateCandidateRequest struct {
	UserID    uuid.UUID `json:"-" validate:"required"`
	FirstName string    `json:"first_name" validate:"required,max=100"`
	LastName  string    `json:"last_name" validate:"required,max=100"`
}

// GetCandidateByUserIDRequest fetches a candidate profile by account id.
type GetCandidateByUserIDRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// UpdateCandidateRequest is the profile-edit form. All fields optional;
// only non-nil fields are written.
type UpdateCandidateRequest struct {
	UserID         uuid.UUID  `json:"-" validate:"required"` // Set internally by handler from auth context
	FirstName      *string    `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName       *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Phone          *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Bio            *string    `json:"bio,omitempty" validate:"omitempty,max=2000"`
	City           *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	State          *string    `json:"state,omitempty" validate:"omitempty,max=100"`
	Country        *string    `json:"country,omitempty" validate:"omitempty,max=100"`
	College        *string    `json:"college,omitempty" validate:"omitempty,max=200"`
	Degree         *string    `json:"degree,omitempty" validate:"omitempty,max=100"`
	FieldOfStudy   *string    `json:"field_of_study,omitempty" validate:"omitempty,max=100"`
	GraduationYear *int       `json:"graduation_year,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	CGPA           *float64   `json:"cgpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	ResumeURL      *string    `json:"resume_url,omitempty" validate:"omitempty,url"`
	PortfolioURL   *string    `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	LinkedinURL    *string    `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GithubURL      *string    `json:"github_url,omitempty" validate:"omitempty,url"`
}

// AddSkillRequest adds one skill to the authenticated candidate's profile.
type AddSkillRequest struct {
	CandidateID       uuid.UUID          `json:"-"`
	SkillName         string             `json:"skill_name" validate:"required,max=100"`
	Proficiency       models.Proficiency `json:"proficiency" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	YearsOfExperience *int               `json:"years_of_experience,omitempty" validate:"omitempty,gte=0,lte=60"`
}

// CandidateResponse is the profile data returned to the client.
type CandidateResponse struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Phone          string          `json:"phone,omitempty"`
	DateOfBirth    *time.Time      `json:"date_of_birth,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	City           string          `json:"city,omitempty"`
	State          string          `json:"state,omitempty"`
	Country        string          `json:"country,omitempty"`
	College        string          `json:"college,omitempty"`
	Degree         string          `json:"degree,omitempty"`
	FieldOfStudy   string          `json:"field_of_study,omitempty"`
	GraduationYear *int            `json:"graduation_year,omitempty"`
	CGPA           *float64        `json:"cgpa,omitempty"`
	ResumeURL      string          `json:"resume_url,omitempty"`
	PortfolioURL   string          `json:"portfolio_url,omitempty"`
	LinkedinURL    string          `json:"linkedin_url,omitempty"`
	GithubURL      string          `json:"github_url,omitempty"`
	Skills         []SkillResponse `json:"skills"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SkillResponse is one skill entry on a candidate profile.
type SkillResponse struct {
	ID                uuid.UUID          `json:"id"`
	SkillName         string             `json:"skill_name"`
	Proficiency       models.Proficiency `json:"proficiency"`
	YearsOfExperience *int               `json:"years_of_experience,omitempty"`
}
