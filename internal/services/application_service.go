package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"nextintern-api/internal/metrics"
	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

type applicationService struct {
	db            *pgxpool.Pool
	appRepo       storage.ApplicationRepository
	oppRepo       storage.OpportunityRepository
	candidateRepo storage.CandidateRepository
	industryRepo  storage.IndustryRepository
	userRepo      storage.UserRepository
	metrics       *metrics.Metrics
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(
	db *pgxpool.Pool,
	appRepo storage.ApplicationRepository,
	oppRepo storage.OpportunityRepository,
	candidateRepo storage.CandidateRepository,
	industryRepo storage.IndustryRepository,
	userRepo storage.UserRepository,
	m *metrics.Metrics,
) ApplicationService {
	return &applicationService{
		db:            db,
		appRepo:       appRepo,
		oppRepo:       oppRepo,
		candidateRepo: candidateRepo,
		industryRepo:  industryRepo,
		userRepo:      userRepo,
		metrics:       m,
	}
}

// Apply runs the eligibility gate and, when it passes, inserts the
// application and bumps the listing's application counter in one
// transaction. A denial is returned as a result, not an error; the handler
// translates it. The partial unique index on applications re-checks the
// already-applied rule at commit time, so a concurrent duplicate surfaces
// as an AlreadyApplied result instead of a raw conflict.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, *policy.EligibilityResult, error) {
	user, err := s.userRepo.GetByID(ctx, &dto.GetUserByIDRequest{ID: req.UserID})
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching account for application")
	}
	if user.UserType != models.UserTypeCandidate {
		return nil, nil, fmt.Errorf("%w: only candidate accounts can apply", ErrForbidden)
	}

	candidate, err := s.candidateRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching candidate profile")
	}

	opp, err := s.oppRepo.GetByID(ctx, &dto.GetOpportunityByIDRequest{ID: req.OpportunityID})
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching opportunity %s for application", req.OpportunityID))
	}

	existing, err := s.appRepo.ListByCandidateAndOpportunity(ctx, candidate.ID, opp.ID)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching prior applications")
	}

	result := policy.CheckEligibility(user.IsPremium, opp, existing, time.Now())
	if !result.OK {
		s.metrics.RecordDenial(string(result.Reason))
		return nil, &result, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Apply: Error beginning transaction: %v", err)
		return nil, nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	app, err := s.appRepo.WithTx(tx).Create(ctx, candidate.ID, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateApplication) {
			// Lost the race with a concurrent submission. Report it the same
			// way as the pre-check so the client sees one behavior.
			denial := policy.EligibilityResult{Reason: policy.ReasonAlreadyApplied}
			if prior, lookupErr := s.appRepo.ListByCandidateAndOpportunity(ctx, candidate.ID, opp.ID); lookupErr == nil {
				for i := range prior {
					if prior[i].Status != models.ApplicationStatusWithdrawn {
						denial.ExistingApplicationID = prior[i].ID
						denial.ExistingStatus = prior[i].Status
						break
					}
				}
			}
			s.metrics.RecordDenial(string(policy.ReasonAlreadyApplied))
			return nil, &denial, nil
		}
		return nil, nil, mapRepoError(err, "creating application")
	}

	if err := s.oppRepo.WithTx(tx).IncrementApplicationCount(ctx, opp.ID, 1); err != nil {
		return nil, nil, mapRepoError(err, "incrementing application count")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Apply: Error committing transaction: %v", err)
		return nil, nil, fmt.Errorf("internal error committing application: %w", err)
	}

	s.metrics.RecordApplication(string(opp.Type))
	return app, nil, nil
}

// Withdraw retracts the caller's own application. Legal from any
// non-terminal status; the listing's counter is decremented in the same
// transaction so a withdrawn slot can be reapplied to.
func (s *applicationService) Withdraw(ctx context.Context, req *dto.WithdrawApplicationRequest) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}

	candidate, err := s.candidateRepo.GetByID(ctx, app.CandidateID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching candidate %s", app.CandidateID))
	}

	if candidate.UserID != req.UserID {
		log.Printf("Withdraw: Forbidden attempt by user %s on application %s", req.UserID, req.ID)
		return nil, ErrForbidden
	}

	if !policy.CanTransition(app.Status, models.ApplicationStatusWithdrawn) {
		return nil, fmt.Errorf("%w: cannot withdraw from status %s", ErrInvalidTransition, app.Status)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Withdraw: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	withdrawn, err := s.appRepo.WithTx(tx).UpdateStatus(ctx, app.ID, models.ApplicationStatusWithdrawn)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("withdrawing application %s", app.ID))
	}

	if err := s.oppRepo.WithTx(tx).IncrementApplicationCount(ctx, app.OpportunityID, -1); err != nil {
		return nil, mapRepoError(err, "decrementing application count")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Withdraw: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing withdrawal: %w", err)
	}

	s.metrics.RecordTransition(string(models.ApplicationStatusWithdrawn))
	return withdrawn, nil
}

// UpdateStatus advances an application through the review pipeline. Only the
// industry owning the opportunity may move it, and only along legal edges.
func (s *applicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}

	if err := s.authorizeReviewer(ctx, req.UserID, app.OpportunityID); err != nil {
		return nil, err
	}

	if req.Status == models.ApplicationStatusWithdrawn {
		return nil, fmt.Errorf("%w: withdrawal is candidate-initiated", ErrForbidden)
	}
	if !policy.CanTransition(app.Status, req.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, app.Status, req.Status)
	}

	updated, err := s.appRepo.UpdateStatus(ctx, app.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating status of application %s", app.ID))
	}

	s.metrics.RecordTransition(string(req.Status))
	return updated, nil
}

// GetByID returns one application to either party: the applying candidate
// or the reviewing industry.
func (s *applicationService) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}

	if candidate, err := s.candidateRepo.GetByUserID(ctx, req.UserID); err == nil && candidate.ID == app.CandidateID {
		return app, nil
	}
	if err := s.authorizeReviewer(ctx, req.UserID, app.OpportunityID); err == nil {
		return app, nil
	}

	log.Printf("GetByID: Forbidden attempt by user %s on application %s", req.UserID, req.ID)
	return nil, ErrForbidden
}

// ListMine returns the caller's applications, optionally narrowed to one
// status bucket.
func (s *applicationService) ListMine(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error) {
	candidate, err := s.candidateRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "fetching candidate profile")
	}

	statuses := policy.StatusesInBucket(policy.StatusBucket(req.Bucket))

	apps, err := s.appRepo.ListByCandidate(ctx, candidate.ID, statuses, req.Limit, req.Offset)
	if err != nil {
		return nil, mapRepoError(err, "listing own applications")
	}
	return apps, nil
}

// ListByOpportunity returns applicants for one of the caller's listings.
func (s *applicationService) ListByOpportunity(ctx context.Context, req *dto.ListApplicationsByOpportunityRequest) ([]models.Application, error) {
	if err := s.authorizeReviewer(ctx, req.UserID, req.OpportunityID); err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByOpportunity(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for opportunity %s", req.OpportunityID))
	}
	return apps, nil
}

// authorizeReviewer verifies the account owns the industry that posted the
// opportunity.
func (s *applicationService) authorizeReviewer(ctx context.Context, userID, opportunityID uuid.UUID) error {
	opp, err := s.oppRepo.GetByID(ctx, &dto.GetOpportunityByIDRequest{ID: opportunityID})
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching opportunity %s", opportunityID))
	}

	industry, err := s.industryRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrForbidden
		}
		return mapRepoError(err, "fetching company profile")
	}

	if opp.IndustryID != industry.ID {
		return ErrForbidden
	}
	return nil
}
