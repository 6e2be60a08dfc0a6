package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"nextintern-api/internal/models"
	"nextintern-api/internal/transport/dto"
)

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	SetPremium(ctx context.Context, id uuid.UUID, premium bool) (*models.User, error)
	WithTx(tx pgx.Tx) UserRepository
}

// CandidateRepository defines the interface for candidate profile data operations.
type CandidateRepository interface {
	Create(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	Update(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	ListSkills(ctx context.Context, candidateID uuid.UUID) ([]models.CandidateSkill, error)
	AddSkill(ctx context.Context, candidateID uuid.UUID, req *dto.AddSkillRequest) (*models.CandidateSkill, error)
	RemoveSkill(ctx context.Context, candidateID, skillID uuid.UUID) error
	WithTx(tx pgx.Tx) CandidateRepository
}

// IndustryRepository defines the interface for company profile data operations.
type IndustryRepository interface {
	Create(ctx context.Context, req *dto.CreateIndustryRequest, anonymousID string) (*models.Industry, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Industry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Industry, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Industry, error)
	Update(ctx context.Context, req *dto.UpdateIndustryRequest) (*models.Industry, error)
	WithTx(tx pgx.Tx) IndustryRepository
}

// OpportunityRepository defines the interface for listing data operations.
type OpportunityRepository interface {
	Create(ctx context.Context, req *dto.CreateOpportunityRequest) (*models.Opportunity, error)
	GetByID(ctx context.Context, req *dto.GetOpportunityByIDRequest) (*models.Opportunity, error)
	List(ctx context.Context, req *dto.ListOpportunitiesRequest) ([]models.Opportunity, error)
	ListByIndustry(ctx context.Context, req *dto.ListOpportunitiesByIndustryRequest) ([]models.Opportunity, error)
	Update(ctx context.Context, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error)
	Delete(ctx context.Context, req *dto.DeleteOpportunityRequest) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	IncrementApplicationCount(ctx context.Context, id uuid.UUID, delta int) error
	WithTx(tx pgx.Tx) OpportunityRepository
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, candidateID uuid.UUID, req *dto.ApplyRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, statuses []models.ApplicationStatus, limit, offset int) ([]models.Application, error)
	ListByCandidateAndOpportunity(ctx context.Context, candidateID, opportunityID uuid.UUID) ([]models.Application, error)
	ListByOpportunity(ctx context.Context, req *dto.ListApplicationsByOpportunityRequest) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	WithTx(tx pgx.Tx) ApplicationRepository
}

// SavedOpportunityRepository defines the interface for bookmark data operations.
type SavedOpportunityRepository interface {
	Save(ctx context.Context, candidateID, opportunityID uuid.UUID) (*models.SavedOpportunity, error)
	Unsave(ctx context.Context, candidateID, opportunityID uuid.UUID) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]models.SavedOpportunity, error)
	SavedSet(ctx context.Context, candidateID uuid.UUID, opportunityIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	WithTx(tx pgx.Tx) SavedOpportunityRepository
}
