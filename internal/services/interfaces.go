package services

import (
	"context"

	"github.com/google/uuid"

	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/transport/dto"
)

// UserService defines the interface for account and session business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	SetPremium(ctx context.Context, userID uuid.UUID, premium bool) (*models.User, string, string, error)
}

// OpportunityService defines the interface for listing business logic.
type OpportunityService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateOpportunityRequest) (*models.Opportunity, error)
	GetView(ctx context.Context, id uuid.UUID, viewer policy.Viewer) (*policy.OpportunityView, error)
	ListViews(ctx context.Context, req *dto.ListOpportunitiesRequest, viewer policy.Viewer) ([]policy.OpportunityView, error)
	ListMine(ctx context.Context, userID uuid.UUID, req *dto.ListOpportunitiesByIndustryRequest) ([]models.Opportunity, error)
	GetMine(ctx context.Context, userID, id uuid.UUID) (*models.Opportunity, error)
	Update(ctx context.Context, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error)
	Deactivate(ctx context.Context, userID, id uuid.UUID) (*models.Opportunity, error)
	Delete(ctx context.Context, req *dto.DeleteOpportunityRequest) error
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, *policy.EligibilityResult, error)
	Withdraw(ctx context.Context, req *dto.WithdrawApplicationRequest) (*models.Application, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error)
	ListMine(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error)
	ListByOpportunity(ctx context.Context, req *dto.ListApplicationsByOpportunityRequest) ([]models.Application, error)
}

// CandidateService defines the interface for candidate profile business logic.
type CandidateService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Candidate, []models.CandidateSkill, error)
	Update(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	AddSkill(ctx context.Context, userID uuid.UUID, req *dto.AddSkillRequest) (*models.CandidateSkill, error)
	RemoveSkill(ctx context.Context, userID, skillID uuid.UUID) error
	Completion(ctx context.Context, userID uuid.UUID) (*policy.CompletionResult, error)
}

// IndustryService defines the interface for company profile business logic.
type IndustryService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Industry, error)
	Update(ctx context.Context, req *dto.UpdateIndustryRequest) (*models.Industry, error)
}

// SavedOpportunityService defines the interface for bookmark business logic.
type SavedOpportunityService interface {
	Save(ctx context.Context, req *dto.SaveOpportunityRequest) (*models.SavedOpportunity, error)
	Unsave(ctx context.Context, req *dto.UnsaveOpportunityRequest) error
	ListMine(ctx context.Context, req *dto.ListSavedOpportunitiesRequest) ([]policy.OpportunityView, error)
}
