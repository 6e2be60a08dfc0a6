package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "nextintern-api/internal/mocks"
	"nextintern-api/internal/metrics"
	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/services"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type opportunityServiceMocks struct {
	oppRepo       *mock_storage.MockOpportunityRepository
	industryRepo  *mock_storage.MockIndustryRepository
	candidateRepo *mock_storage.MockCandidateRepository
	savedRepo     *mock_storage.MockSavedOpportunityRepository
}

func setupOpportunityService(t *testing.T) (services.OpportunityService, opportunityServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := opportunityServiceMocks{
		oppRepo:       mock_storage.NewMockOpportunityRepository(ctrl),
		industryRepo:  mock_storage.NewMockIndustryRepository(ctrl),
		candidateRepo: mock_storage.NewMockCandidateRepository(ctrl),
		savedRepo:     mock_storage.NewMockSavedOpportunityRepository(ctrl),
	}
	svc := services.NewOpportunityService(m.oppRepo, m.industryRepo, m.candidateRepo, m.savedRepo, metrics.NewWithRegistry(prometheus.NewRegistry()))
	return svc, m
}

func TestOpportunityService_GetView(t *testing.T) {
	opportunityID := uuid.New()
	industryID := uuid.New()

	hiddenCompany := &models.Industry{
		ID:           industryID,
		CompanyName:  "Acme Robotics",
		Industry:     "Robotics",
		Description:  "We build robots.",
		City:         "Pune",
		ContactEmail: "hr@acme.example.com",
		IsVerified:   true,
		AnonymousID:  "ANON-042",
		// ShowCompanyName stays false: the company opted out of disclosure.
	}

	activeInternship := &models.Opportunity{
		ID:         opportunityID,
		IndustryID: industryID,
		Title:      "Backend Intern",
		Type:       models.OpportunityTypeInternship,
		IsActive:   true,
	}

	tests := []struct {
		name          string
		viewer        policy.Viewer
		mockSetup     func(m opportunityServiceMocks)
		check         func(t *testing.T, view *policy.OpportunityView)
		expectedError error
	}{
		{
			name:   "Success - Free Viewer Gets Redacted Company",
			viewer: policy.Viewer{Authenticated: true},
			mockSetup: func(m opportunityServiceMocks) {
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(activeInternship, nil)
				m.industryRepo.EXPECT().GetByID(gomock.Any(), industryID).Return(hiddenCompany, nil)
				m.oppRepo.EXPECT().IncrementViewCount(gomock.Any(), opportunityID).Return(nil)
			},
			check: func(t *testing.T, view *policy.OpportunityView) {
				assert.Equal(t, "Company #042", view.DisplayName)
				assert.False(t, view.ShowDetails)
				assert.Equal(t, "Robotics", view.CompanySector)
				assert.True(t, view.CompanyVerified)
				assert.Empty(t, view.CompanyDescription)
				assert.Empty(t, view.CompanyContact)
				assert.True(t, view.CanApply)
			},
		},
		{
			name:   "Success - Premium Viewer Sees Full Company",
			viewer: policy.Viewer{Authenticated: true, Premium: true},
			mockSetup: func(m opportunityServiceMocks) {
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(activeInternship, nil)
				m.industryRepo.EXPECT().GetByID(gomock.Any(), industryID).Return(hiddenCompany, nil)
				m.oppRepo.EXPECT().IncrementViewCount(gomock.Any(), opportunityID).Return(nil)
			},
			check: func(t *testing.T, view *policy.OpportunityView) {
				assert.Equal(t, "Acme Robotics", view.DisplayName)
				assert.True(t, view.ShowDetails)
				assert.Equal(t, "We build robots.", view.CompanyDescription)
				assert.Equal(t, "hr@acme.example.com", view.CompanyContact)
			},
		},
		{
			name:   "Success - View Counter Failure Is Non Fatal",
			viewer: policy.Viewer{Authenticated: true},
			mockSetup: func(m opportunityServiceMocks) {
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(activeInternship, nil)
				m.industryRepo.EXPECT().GetByID(gomock.Any(), industryID).Return(hiddenCompany, nil)
				m.oppRepo.EXPECT().IncrementViewCount(gomock.Any(), opportunityID).Return(errors.New("connection reset"))
			},
			check: func(t *testing.T, view *policy.OpportunityView) {
				assert.Equal(t, "Company #042", view.DisplayName)
			},
		},
		{
			name:   "Not Found - Inactive Listing",
			viewer: policy.Viewer{Authenticated: true},
			mockSetup: func(m opportunityServiceMocks) {
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
					ID: opportunityID, IndustryID: industryID, Type: models.OpportunityTypeInternship, IsActive: false,
				}, nil)
			},
			expectedError: services.ErrNotFound,
		},
		{
			name:   "Not Found - Freelancing Hidden From Public",
			viewer: policy.Viewer{},
			mockSetup: func(m opportunityServiceMocks) {
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
					ID: opportunityID, IndustryID: industryID, Type: models.OpportunityTypeFreelancing, IsActive: true,
				}, nil)
			},
			expectedError: services.ErrNotFound,
		},
		{
			name:   "Not Found - Premium Only Hidden From Public",
			viewer: policy.Viewer{},
			mockSetup: func(m opportunityServiceMocks) {
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
					ID: opportunityID, IndustryID: industryID, Type: models.OpportunityTypeInternship, IsActive: true, IsPremiumOnly: true,
				}, nil)
			},
			expectedError: services.ErrNotFound,
		},
		{
			name:   "Not Found - Missing Row",
			viewer: policy.Viewer{Authenticated: true},
			mockSetup: func(m opportunityServiceMocks) {
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupOpportunityService(t)
			tt.mockSetup(m)

			view, err := svc.GetView(context.Background(), opportunityID, tt.viewer)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				require.NotNil(t, view)
				tt.check(t, view)
			}
		})
	}
}

func TestOpportunityService_GetView_MissingCompanyDegrades(t *testing.T) {
	svc, m := setupOpportunityService(t)
	opportunityID := uuid.New()
	industryID := uuid.New()

	m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
		ID: opportunityID, IndustryID: industryID, Type: models.OpportunityTypeInternship, IsActive: true,
	}, nil)
	m.industryRepo.EXPECT().GetByID(gomock.Any(), industryID).Return(nil, storage.ErrNotFound)
	m.oppRepo.EXPECT().IncrementViewCount(gomock.Any(), opportunityID).Return(nil)

	view, err := svc.GetView(context.Background(), opportunityID, policy.Viewer{Authenticated: true})

	require.NoError(t, err)
	assert.Equal(t, "Company #000", view.DisplayName)
	assert.False(t, view.ShowDetails)
}

func TestOpportunityService_ListViews(t *testing.T) {
	industryID := uuid.New()
	company := models.Industry{ID: industryID, CompanyName: "Acme Robotics", AnonymousID: "ANON-917"}

	t.Run("Public Browse Sets Query Filter And Backstops", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		req := &dto.ListOpportunitiesRequest{Limit: 20}

		// The repo query already excludes these for public pages; return one
		// anyway to prove the policy filter catches strays.
		m.oppRepo.EXPECT().List(gomock.Any(), req).DoAndReturn(
			func(_ context.Context, got *dto.ListOpportunitiesRequest) ([]models.Opportunity, error) {
				assert.True(t, got.PublicOnly)
				return []models.Opportunity{
					{ID: uuid.New(), IndustryID: industryID, Type: models.OpportunityTypeInternship, IsActive: true},
					{ID: uuid.New(), IndustryID: industryID, Type: models.OpportunityTypeFreelancing, IsActive: true},
				}, nil
			})
		m.industryRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{industryID}).Return(map[uuid.UUID]models.Industry{industryID: company}, nil)

		views, err := svc.ListViews(context.Background(), req, policy.Viewer{})

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, models.OpportunityTypeInternship, views[0].Opportunity.Type)
		assert.Equal(t, "Company #917", views[0].DisplayName)
		assert.False(t, views[0].CanApply)
	})

	t.Run("Authenticated Browse Sees Everything", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		req := &dto.ListOpportunitiesRequest{Limit: 20}

		m.oppRepo.EXPECT().List(gomock.Any(), req).DoAndReturn(
			func(_ context.Context, got *dto.ListOpportunitiesRequest) ([]models.Opportunity, error) {
				assert.False(t, got.PublicOnly)
				return []models.Opportunity{
					{ID: uuid.New(), IndustryID: industryID, Type: models.OpportunityTypeInternship, IsActive: true},
					{ID: uuid.New(), IndustryID: industryID, Type: models.OpportunityTypeFreelancing, IsActive: true},
				}, nil
			})
		m.industryRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{industryID}).Return(map[uuid.UUID]models.Industry{industryID: company}, nil)

		views, err := svc.ListViews(context.Background(), req, policy.Viewer{Authenticated: true})

		require.NoError(t, err)
		require.Len(t, views, 2)

		// Enumerable but not applicable without premium.
		assert.True(t, views[0].CanApply)
		assert.False(t, views[1].CanApply)
	})

	t.Run("Candidate Viewer Gets Bookmark Markers", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		userID := uuid.New()
		candidateID := uuid.New()
		savedOppID := uuid.New()
		otherOppID := uuid.New()
		req := &dto.ListOpportunitiesRequest{Limit: 20}

		m.oppRepo.EXPECT().List(gomock.Any(), req).Return([]models.Opportunity{
			{ID: savedOppID, IndustryID: industryID, Type: models.OpportunityTypeInternship, IsActive: true},
			{ID: otherOppID, IndustryID: industryID, Type: models.OpportunityTypeProject, IsActive: true},
		}, nil)
		m.industryRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{industryID}).Return(map[uuid.UUID]models.Industry{industryID: company}, nil)
		m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
		m.savedRepo.EXPECT().SavedSet(gomock.Any(), candidateID, []uuid.UUID{savedOppID, otherOppID}).Return(map[uuid.UUID]bool{savedOppID: true}, nil)

		views, err := svc.ListViews(context.Background(), req, policy.Viewer{Authenticated: true, UserID: userID})

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.True(t, views[0].Saved)
		assert.False(t, views[1].Saved)
	})

	t.Run("Industry Viewer Skips Bookmark Lookup", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		userID := uuid.New()
		req := &dto.ListOpportunitiesRequest{Limit: 20}

		m.oppRepo.EXPECT().List(gomock.Any(), req).Return([]models.Opportunity{
			{ID: uuid.New(), IndustryID: industryID, Type: models.OpportunityTypeInternship, IsActive: true},
		}, nil)
		m.industryRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{industryID}).Return(map[uuid.UUID]models.Industry{industryID: company}, nil)
		m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

		views, err := svc.ListViews(context.Background(), req, policy.Viewer{Authenticated: true, UserID: userID})

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.False(t, views[0].Saved)
	})

	t.Run("Bookmark Lookup Failure Is Non Fatal", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		userID := uuid.New()
		candidateID := uuid.New()
		req := &dto.ListOpportunitiesRequest{Limit: 20}

		m.oppRepo.EXPECT().List(gomock.Any(), req).Return([]models.Opportunity{
			{ID: uuid.New(), IndustryID: industryID, Type: models.OpportunityTypeInternship, IsActive: true},
		}, nil)
		m.industryRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{industryID}).Return(map[uuid.UUID]models.Industry{industryID: company}, nil)
		m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
		m.savedRepo.EXPECT().SavedSet(gomock.Any(), candidateID, gomock.Any()).Return(nil, errors.New("db connection error"))

		views, err := svc.ListViews(context.Background(), req, policy.Viewer{Authenticated: true, UserID: userID})

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.False(t, views[0].Saved)
	})
}

func TestOpportunityService_Create(t *testing.T) {
	userID := uuid.New()
	industryID := uuid.New()

	t.Run("Success Stamps Owning Industry", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		req := &dto.CreateOpportunityRequest{Title: "Backend Intern", Type: models.OpportunityTypeInternship, WorkType: models.WorkTypeRemote}

		m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Industry{ID: industryID, UserID: userID}, nil)
		m.oppRepo.EXPECT().Create(gomock.Any(), req).DoAndReturn(
			func(_ context.Context, got *dto.CreateOpportunityRequest) (*models.Opportunity, error) {
				assert.Equal(t, industryID, got.IndustryID)
				return &models.Opportunity{ID: uuid.New(), IndustryID: got.IndustryID, Title: got.Title, IsActive: true}, nil
			})

		opp, err := svc.Create(context.Background(), userID, req)

		require.NoError(t, err)
		assert.Equal(t, industryID, opp.IndustryID)
		assert.True(t, opp.IsActive)
	})

	t.Run("Forbidden Without Company Profile", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

		opp, err := svc.Create(context.Background(), userID, &dto.CreateOpportunityRequest{Title: "Backend Intern"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Nil(t, opp)
	})
}

func TestOpportunityService_Ownership(t *testing.T) {
	userID := uuid.New()
	industryID := uuid.New()
	opportunityID := uuid.New()

	t.Run("Update Forbidden For Foreign Listing", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
			ID: opportunityID, IndustryID: uuid.New(),
		}, nil)
		m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Industry{ID: industryID, UserID: userID}, nil)

		opp, err := svc.Update(context.Background(), &dto.UpdateOpportunityRequest{ID: opportunityID, UserID: userID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Nil(t, opp)
	})

	t.Run("Deactivate Flips IsActive Only", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
			ID: opportunityID, IndustryID: industryID, IsActive: true,
		}, nil)
		m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Industry{ID: industryID, UserID: userID}, nil)
		m.oppRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got *dto.UpdateOpportunityRequest) (*models.Opportunity, error) {
				require.NotNil(t, got.IsActive)
				assert.False(t, *got.IsActive)
				assert.Nil(t, got.Title)
				return &models.Opportunity{ID: opportunityID, IndustryID: industryID, IsActive: false}, nil
			})

		opp, err := svc.Deactivate(context.Background(), userID, opportunityID)

		require.NoError(t, err)
		assert.False(t, opp.IsActive)
	})

	t.Run("Delete Forbidden For Foreign Listing", func(t *testing.T) {
		svc, m := setupOpportunityService(t)

		m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
			ID: opportunityID, IndustryID: uuid.New(),
		}, nil)
		m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Industry{ID: industryID, UserID: userID}, nil)

		err := svc.Delete(context.Background(), &dto.DeleteOpportunityRequest{ID: opportunityID, UserID: userID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}
