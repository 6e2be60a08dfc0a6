package services

import (
	"context"
	"errors"
	"fmt"

	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

type savedOpportunityService struct {
	savedRepo     storage.SavedOpportunityRepository
	oppRepo       storage.OpportunityRepository
	industryRepo  storage.IndustryRepository
	candidateRepo storage.CandidateRepository
}

// NewSavedOpportunityService creates a new instance of SavedOpportunityService.
func NewSavedOpportunityService(
	savedRepo storage.SavedOpportunityRepository,
	oppRepo storage.OpportunityRepository,
	industryRepo storage.IndustryRepository,
	candidateRepo storage.CandidateRepository,
) SavedOpportunityService {
	return &savedOpportunityService{
		savedRepo:     savedRepo,
		oppRepo:       oppRepo,
		industryRepo:  industryRepo,
		candidateRepo: candidateRepo,
	}
}

// Save bookmarks an opportunity. Saving a second time is a no-op conflict,
// not an error worth surfacing.
func (s *savedOpportunityService) Save(ctx context.Context, req *dto.SaveOpportunityRequest) (*models.SavedOpportunity, error) {
	candidate, err := s.candidateRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "fetching candidate profile")
	}

	// Confirm the listing exists before bookmarking it.
	if _, err := s.oppRepo.GetByID(ctx, &dto.GetOpportunityByIDRequest{ID: req.OpportunityID}); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching opportunity %s", req.OpportunityID))
	}

	saved, err := s.savedRepo.Save(ctx, candidate.ID, req.OpportunityID)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateSave) {
			return nil, fmt.Errorf("%w: already saved", ErrConflict)
		}
		return nil, mapRepoError(err, "saving opportunity")
	}
	return saved, nil
}

func (s *savedOpportunityService) Unsave(ctx context.Context, req *dto.UnsaveOpportunityRequest) error {
	candidate, err := s.candidateRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return mapRepoError(err, "fetching candidate profile")
	}

	if err := s.savedRepo.Unsave(ctx, candidate.ID, req.OpportunityID); err != nil {
		return mapRepoError(err, "unsaving opportunity")
	}
	return nil
}

// ListMine returns the caller's bookmarks as redacted views, so a saved
// listing renders with the same disclosure rules as the browse page. A
// bookmark whose listing has since been deleted is skipped.
func (s *savedOpportunityService) ListMine(ctx context.Context, req *dto.ListSavedOpportunitiesRequest) ([]policy.OpportunityView, error) {
	candidate, err := s.candidateRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "fetching candidate profile")
	}

	saved, err := s.savedRepo.ListByCandidate(ctx, candidate.ID, req.Limit, req.Offset)
	if err != nil {
		return nil, mapRepoError(err, "listing saved opportunities")
	}

	viewer := policy.Viewer{Authenticated: true, Premium: req.Premium}

	views := make([]policy.OpportunityView, 0, len(saved))
	for i := range saved {
		opp, err := s.oppRepo.GetByID(ctx, &dto.GetOpportunityByIDRequest{ID: saved[i].OpportunityID})
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, mapRepoError(err, "fetching saved opportunity")
		}

		var company *models.Industry
		if c, err := s.industryRepo.GetByID(ctx, opp.IndustryID); err == nil {
			company = c
		}

		view := policy.Redact(opp, company, viewer)
		view.Saved = true
		views = append(views, view)
	}

	return views, nil
}
