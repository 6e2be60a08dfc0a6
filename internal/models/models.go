package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- User Type Enum ---
type UserType string

const (
	UserTypeCandidate UserType = "CANDIDATE"
	UserTypeIndustry  UserType = "INDUSTRY"
)

// Scan implements the sql.Scanner interface for UserType
func (ut *UserType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan UserType: value is not string or []byte")
		}
	}
	v := UserType(strVal)
	switch v {
	case UserTypeCandidate, UserTypeIndustry:
		*ut = v
		return nil
	default:
		return fmt.Errorf("invalid UserType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for UserType
func (ut UserType) Value() (driver.Value, error) {
	return string(ut), nil
}

// --- Opportunity Type Enum ---
type OpportunityType string

const (
	OpportunityTypeInternship  OpportunityType = "INTERNSHIP"
	OpportunityTypeProject     OpportunityType = "PROJECT"
	OpportunityTypeFreelancing OpportunityType = "FREELANCING"
)

// Scan implements the sql.Scanner interface for OpportunityType
func (ot *OpportunityType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan OpportunityType: value is not string or []byte")
		}
	}
	v := OpportunityType(strVal)
	switch v {
	case OpportunityTypeInternship, OpportunityTypeProject, OpportunityTypeFreelancing:
		*ot = v
		return nil
	default:
		return fmt.Errorf("invalid OpportunityType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for OpportunityType
func (ot OpportunityType) Value() (driver.Value, error) {
	return string(ot), nil
}

// --- Work Type Enum ---
type WorkType string

const (
	WorkTypeRemote WorkType = "REMOTE"
	WorkTypeOnsite WorkType = "ONSITE"
	WorkTypeHybrid WorkType = "HYBRID"
)

// Scan implements the sql.Scanner interface for WorkType
func (wt *WorkType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan WorkType: value is not string or []byte")
		}
	}
	v := WorkType(strVal)
	switch v {
	case WorkTypeRemote, WorkTypeOnsite, WorkTypeHybrid:
		*wt = v
		return nil
	default:
		return fmt.Errorf("invalid WorkType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for WorkType
func (wt WorkType) Value() (driver.Value, error) {
	return string(wt), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending            ApplicationStatus = "PENDING"
	ApplicationStatusReviewed           ApplicationStatus = "REVIEWED"
	ApplicationStatusShortlisted        ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	ApplicationStatusSelected           ApplicationStatus = "SELECTED"
	ApplicationStatusRejected           ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn          ApplicationStatus = "WITHDRAWN"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusInterviewScheduled, ApplicationStatusSelected,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// --- Skill Proficiency Enum ---
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "BEGINNER"
	ProficiencyIntermediate Proficiency = "INTERMEDIATE"
	ProficiencyAdvanced     Proficiency = "ADVANCED"
	ProficiencyExpert       Proficiency = "EXPERT"
)

// Scan implements the sql.Scanner interface for Proficiency
func (p *Proficiency) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Proficiency: value is not string or []byte")
		}
	}
	v := Proficiency(strVal)
	switch v {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		*p = v
		return nil
	default:
		return fmt.Errorf("invalid Proficiency value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Proficiency
func (p Proficiency) Value() (driver.Value, error) {
	return string(p), nil
}

// User is an account (candidate or industry). The premium flag lives on the
// account, not on the candidate profile.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	UserType     UserType  `json:"user_type" db:"user_type"`
	IsPremium    bool      `json:"is_premium" db:"is_premium"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Candidate is a student/job-seeker profile owned by a User account.
type Candidate struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`
	FirstName      string     `json:"first_name" db:"first_name"`
	LastName       string     `json:"last_name" db:"last_name"`
	Phone          string     `json:"phone" db:"phone"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Bio            string     `json:"bio" db:"bio"`
	City           string     `json:"city" db:"city"`
	State          string     `json:"state" db:"state"`
	Country        string     `json:"country" db:"country"`
	College        string     `json:"college" db:"college"`
	Degree         string     `json:"degree" db:"degree"`
	FieldOfStudy   string     `json:"field_of_study" db:"field_of_study"`
	GraduationYear *int       `json:"graduation_year,omitempty" db:"graduation_year"`
	CGPA           *float64   `json:"cgpa,omitempty" db:"cgpa"`
	ResumeURL      string     `json:"resume_url" db:"resume_url"`
	PortfolioURL   string     `json:"portfolio_url" db:"portfolio_url"`
	LinkedinURL    string     `json:"linkedin_url" db:"linkedin_url"`
	GithubURL      string     `json:"github_url" db:"github_url"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// CandidateSkill is one skill entry on a candidate profile.
type CandidateSkill struct {
	ID                uuid.UUID   `json:"id" db:"id"`
	CandidateID       uuid.UUID   `json:"candidate_id" db:"candidate_id"`
	SkillName         string      `json:"skill_name" db:"skill_name"`
	Proficiency       Proficiency `json:"proficiency" db:"proficiency"`
	YearsOfExperience *int        `json:"years_of_experience,omitempty" db:"years_of_experience"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
}

// Industry is a company/employer profile owned by a User account.
// AnonymousID is assigned at signup and never changes; the redacted display
// name is always derived from it, never stored.
type Industry struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	CompanyName     string    `json:"company_name" db:"company_name"`
	Industry        string    `json:"industry" db:"industry"`
	Description     string    `json:"description" db:"description"`
	City            string    `json:"city" db:"city"`
	State           string    `json:"state" db:"state"`
	Country         string    `json:"country" db:"country"`
	Website         string    `json:"website" db:"website"`
	ContactEmail    string    `json:"contact_email" db:"contact_email"`
	IsVerified      bool      `json:"is_verified" db:"is_verified"`
	ShowCompanyName bool      `json:"show_company_name" db:"show_company_name"`
	AnonymousID     string    `json:"-" db:"anonymous_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Opportunity is a posted internship, project or freelancing engagement.
// ApplicationCount and ViewCount are maintained by the storage layer.
type Opportunity struct {
	ID                  uuid.UUID       `json:"id" db:"id"`
	IndustryID          uuid.UUID       `json:"industry_id" db:"industry_id"`
	Title               string          `json:"title" db:"title"`
	Description         string          `json:"description" db:"description"`
	Type                OpportunityType `json:"type" db:"type"`
	WorkType            WorkType        `json:"work_type" db:"work_type"`
	Category            string          `json:"category" db:"category"`
	Location            string          `json:"location" db:"location"`
	Stipend             *float64        `json:"stipend,omitempty" db:"stipend"`
	Skills              []string        `json:"skills" db:"skills"`
	IsActive            bool            `json:"is_active" db:"is_active"`
	IsPremiumOnly       bool            `json:"is_premium_only" db:"is_premium_only"`
	ApplicationCount    int             `json:"application_count" db:"application_count"`
	ViewCount           int             `json:"view_count" db:"view_count"`
	ApplicationDeadline *time.Time      `json:"application_deadline,omitempty" db:"application_deadline"`
	StartDate           *time.Time      `json:"start_date,omitempty" db:"start_date"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}

// Application links one candidate to one opportunity. At most one
// non-withdrawn application may exist per (candidate, opportunity) pair;
// a partial unique index enforces this at the database level.
type Application struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	CandidateID   uuid.UUID         `json:"candidate_id" db:"candidate_id"`
	OpportunityID uuid.UUID         `json:"opportunity_id" db:"opportunity_id"`
	Status        ApplicationStatus `json:"status" db:"status"`
	CoverLetter   string            `json:"cover_letter" db:"cover_letter"`
	AppliedAt     time.Time         `json:"applied_at" db:"applied_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// SavedOpportunity is a bookmark relation, independent of Application.
type SavedOpportunity struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CandidateID   uuid.UUID `json:"candidate_id" db:"candidate_id"`
	OpportunityID uuid.UUID `json:"opportunity_id" db:"opportunity_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
