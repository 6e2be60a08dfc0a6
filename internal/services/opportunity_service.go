package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"nextintern-api/internal/metrics"
	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

type opportunityService struct {
	oppRepo       storage.OpportunityRepository
	industryRepo  storage.IndustryRepository
	candidateRepo storage.CandidateRepository
	savedRepo     storage.SavedOpportunityRepository
	metrics       *metrics.Metrics
}

// NewOpportunityService creates a new instance of OpportunityService.
func NewOpportunityService(
	oppRepo storage.OpportunityRepository,
	industryRepo storage.IndustryRepository,
	candidateRepo storage.CandidateRepository,
	savedRepo storage.SavedOpportunityRepository,
	m *metrics.Metrics,
) OpportunityService {
	return &opportunityService{
		oppRepo:       oppRepo,
		industryRepo:  industryRepo,
		candidateRepo: candidateRepo,
		savedRepo:     savedRepo,
		metrics:       m,
	}
}

// Create posts a new listing for the industry owning the account.
func (s *opportunityService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateOpportunityRequest) (*models.Opportunity, error) {
	industry, err := s.industryRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: no company profile for account", ErrForbidden)
		}
		return nil, mapRepoError(err, "fetching company profile")
	}

	req.IndustryID = industry.ID
	opp, err := s.oppRepo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating opportunity")
	}
	return opp, nil
}

// GetView returns one listing redacted for the viewer. Inactive listings and
// listings the viewer may not enumerate read as not found rather than
// forbidden, so their existence leaks nothing. Each successful view bumps
// the listing's view counter.
func (s *opportunityService) GetView(ctx context.Context, id uuid.UUID, viewer policy.Viewer) (*policy.OpportunityView, error) {
	opp, err := s.oppRepo.GetByID(ctx, &dto.GetOpportunityByIDRequest{ID: id})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching opportunity %s", id))
	}

	if !opp.IsActive || !policy.IsVisible(opp, viewer) {
		return nil, fmt.Errorf("%w: opportunity %s", ErrNotFound, id)
	}

	company, err := s.industryRepo.GetByID(ctx, opp.IndustryID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, fmt.Sprintf("fetching company for opportunity %s", id))
	}

	if err := s.oppRepo.IncrementViewCount(ctx, id); err != nil {
		// Non-fatal; the page still renders.
		log.Printf("GetView: failed to bump view count for %s: %v", id, err)
	}
	s.metrics.RecordView(viewerTier(viewer))

	views := []policy.OpportunityView{policy.Redact(opp, company, viewer)}
	s.markSaved(ctx, viewer, views)
	return &views[0], nil
}

// ListViews returns a page of listings redacted for the viewer. Public pages
// exclude freelancing and premium-only listings at the query level; the
// policy filter backstops anything the query missed. Company rows for the
// page are loaded in one batch.
func (s *opportunityService) ListViews(ctx context.Context, req *dto.ListOpportunitiesRequest, viewer policy.Viewer) ([]policy.OpportunityView, error) {
	req.PublicOnly = !viewer.Authenticated

	opps, err := s.oppRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing opportunities")
	}

	industryIDs := make([]uuid.UUID, 0, len(opps))
	seen := make(map[uuid.UUID]bool, len(opps))
	for i := range opps {
		if !seen[opps[i].IndustryID] {
			seen[opps[i].IndustryID] = true
			industryIDs = append(industryIDs, opps[i].IndustryID)
		}
	}

	companies, err := s.industryRepo.GetByIDs(ctx, industryIDs)
	if err != nil {
		return nil, mapRepoError(err, "fetching companies for listing page")
	}

	views := make([]policy.OpportunityView, 0, len(opps))
	for i := range opps {
		if !policy.IsVisible(&opps[i], viewer) {
			continue
		}
		var company *models.Industry
		if c, ok := companies[opps[i].IndustryID]; ok {
			company = &c
		}
		views = append(views, policy.Redact(&opps[i], company, viewer))
	}

	s.markSaved(ctx, viewer, views)
	return views, nil
}

// markSaved fills the bookmark markers for a candidate viewer. Industry
// accounts have no bookmarks and are skipped; a failed lookup degrades to
// unmarked views rather than failing the page.
func (s *opportunityService) markSaved(ctx context.Context, viewer policy.Viewer, views []policy.OpportunityView) {
	if !viewer.Authenticated || viewer.UserID == uuid.Nil || len(views) == 0 {
		return
	}

	candidate, err := s.candidateRepo.GetByUserID(ctx, viewer.UserID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("markSaved: failed to fetch candidate for user %s: %v", viewer.UserID, err)
		}
		return
	}

	ids := make([]uuid.UUID, len(views))
	for i := range views {
		ids[i] = views[i].Opportunity.ID
	}

	saved, err := s.savedRepo.SavedSet(ctx, candidate.ID, ids)
	if err != nil {
		log.Printf("markSaved: failed to fetch bookmarks for candidate %s: %v", candidate.ID, err)
		return
	}

	for i := range views {
		views[i].Saved = saved[views[i].Opportunity.ID]
	}
}

// ListMine returns the listings owned by the industry account, unredacted.
func (s *opportunityService) ListMine(ctx context.Context, userID uuid.UUID, req *dto.ListOpportunitiesByIndustryRequest) ([]models.Opportunity, error) {
	industry, err := s.industryRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: no company profile for account", ErrForbidden)
		}
		return nil, mapRepoError(err, "fetching company profile")
	}

	req.IndustryID = industry.ID
	opps, err := s.oppRepo.ListByIndustry(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing own opportunities")
	}
	return opps, nil
}

// GetMine returns one owned listing, unredacted, after an ownership check.
func (s *opportunityService) GetMine(ctx context.Context, userID, id uuid.UUID) (*models.Opportunity, error) {
	opp, _, err := s.fetchOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return opp, nil
}

// Update edits an owned listing.
func (s *opportunityService) Update(ctx context.Context, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error) {
	if _, _, err := s.fetchOwned(ctx, req.UserID, req.ID); err != nil {
		return nil, err
	}

	opp, err := s.oppRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating opportunity %s", req.ID))
	}
	return opp, nil
}

// Deactivate closes a listing to new applications without deleting its
// application history.
func (s *opportunityService) Deactivate(ctx context.Context, userID, id uuid.UUID) (*models.Opportunity, error) {
	if _, _, err := s.fetchOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	inactive := false
	opp, err := s.oppRepo.Update(ctx, &dto.UpdateOpportunityRequest{ID: id, IsActive: &inactive})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("deactivating opportunity %s", id))
	}
	return opp, nil
}

// Delete removes an owned listing entirely.
func (s *opportunityService) Delete(ctx context.Context, req *dto.DeleteOpportunityRequest) error {
	if _, _, err := s.fetchOwned(ctx, req.UserID, req.ID); err != nil {
		return err
	}

	if err := s.oppRepo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting opportunity %s", req.ID))
	}
	return nil
}

// fetchOwned loads a listing and verifies the account owns it.
func (s *opportunityService) fetchOwned(ctx context.Context, userID, id uuid.UUID) (*models.Opportunity, *models.Industry, error) {
	opp, err := s.oppRepo.GetByID(ctx, &dto.GetOpportunityByIDRequest{ID: id})
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching opportunity %s", id))
	}

	industry, err := s.industryRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: no company profile for account", ErrForbidden)
		}
		return nil, nil, mapRepoError(err, "fetching company profile")
	}

	if opp.IndustryID != industry.ID {
		log.Printf("Forbidden attempt by user %s on opportunity %s owned by industry %s", userID, id, opp.IndustryID)
		return nil, nil, ErrForbidden
	}

	return opp, industry, nil
}

func viewerTier(viewer policy.Viewer) string {
	switch {
	case viewer.Premium:
		return "premium"
	case viewer.Authenticated:
		return "free"
	default:
		return "public"
	}
}
