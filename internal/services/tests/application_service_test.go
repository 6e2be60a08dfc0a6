package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

type applicationServiceMocks struct {
	appRepo       *mock_storage.MockApplicationRepository
	oppRepo       *mock_storage.MockOpportunityRepository
	candidateRepo *mock_storage.MockCandidateRepository
	industryRepo  *mock_storage.MockIndustryRepository
	userRepo      *mock_storage.MockUserRepository
}

// setupApplicationService builds the service on mocked repositories. The
// pool is nil, so only code paths that stop before a transaction begins can
// run here; the transactional paths are covered by the integration suite.
func setupApplicationService(t *testing.T) (services.ApplicationService, applicationServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := applicationServiceMocks{
		appRepo:       mock_storage.NewMockApplicationRepository(ctrl),
		oppRepo:       mock_storage.NewMockOpportunityRepository(ctrl),
		candidateRepo: mock_storage.NewMockCandidateRepository(ctrl),
		industryRepo:  mock_storage.NewMockIndustryRepository(ctrl),
		userRepo:      mock_storage.NewMockUserRepository(ctrl),
	}

	svc := services.NewApplicationService(
		nil,
		m.appRepo,
		m.oppRepo,
		m.candidateRepo,
		m.industryRepo,
		m.userRepo,
		metrics.NewWithRegistry(prometheus.NewRegistry()),
	)
	return svc, m
}

func timePtr(t time.Time) *time.Time { return &t }

func TestApplicationService_Apply_Denials(t *testing.T) {
	userID := uuid.New()
	candidateID := uuid.New()
	opportunityID := uuid.New()
	existingAppID := uuid.New()

	candidateUser := &models.User{ID: userID, UserType: models.UserTypeCandidate}
	candidate := &models.Candidate{ID: candidateID, UserID: userID}

	tests := []struct {
		name            string
		mockSetup       func(m applicationServiceMocks)
		expectedReason  policy.DenialReason
		expectedAppID   uuid.UUID
		expectedAppStat models.ApplicationStatus
	}{
		{
			name: "Opportunity Closed",
			mockSetup: func(m applicationServiceMocks) {
				m.userRepo.EXPECT().GetByID(gomock.Any(), &dto.GetUserByIDRequest{ID: userID}).Return(candidateUser, nil)
				m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(candidate, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
					ID: opportunityID, Type: models.OpportunityTypeInternship, IsActive: false,
				}, nil)
				m.appRepo.EXPECT().ListByCandidateAndOpportunity(gomock.Any(), candidateID, opportunityID).Return(nil, nil)
			},
			expectedReason: policy.ReasonOpportunityClosed,
		},
		{
			name: "Deadline Passed",
			mockSetup: func(m applicationServiceMocks) {
				m.userRepo.EXPECT().GetByID(gomock.Any(), &dto.GetUserByIDRequest{ID: userID}).Return(candidateUser, nil)
				m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(candidate, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
					ID: opportunityID, Type: models.OpportunityTypeInternship, IsActive: true,
					ApplicationDeadline: timePtr(time.Now().Add(-24 * time.Hour)),
				}, nil)
				m.appRepo.EXPECT().ListByCandidateAndOpportunity(gomock.Any(), candidateID, opportunityID).Return(nil, nil)
			},
			expectedReason: policy.ReasonDeadlinePassed,
		},
		{
			name: "Premium Required - Freelancing",
			mockSetup: func(m applicationServiceMocks) {
				m.userRepo.EXPECT().GetByID(gomock.Any(), &dto.GetUserByIDRequest{ID: userID}).Return(candidateUser, nil)
				m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(candidate, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
					ID: opportunityID, Type: models.OpportunityTypeFreelancing, IsActive: true,
				}, nil)
				m.appRepo.EXPECT().ListByCandidateAndOpportunity(gomock.Any(), candidateID, opportunityID).Return(nil, nil)
			},
			expectedReason: policy.ReasonPremiumRequired,
		},
		{
			name: "Premium Required - Premium Only Listing",
			mockSetup: func(m applicationServiceMocks) {
				m.userRepo.EXPECT().GetByID(gomock.Any(), &dto.GetUserByIDRequest{ID: userID}).Return(candidateUser, nil)
				m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(candidate, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
					ID: opportunityID, Type: models.OpportunityTypeInternship, IsActive: true, IsPremiumOnly: true,
				}, nil)
				m.appRepo.EXPECT().ListByCandidateAndOpportunity(gomock.Any(), candidateID, opportunityID).Return(nil, nil)
			},
			expectedReason: policy.ReasonPremiumRequired,
		},
		{
			name: "Already Applied",
			mockSetup: func(m applicationServiceMocks) {
				m.userRepo.EXPECT().GetByID(gomock.Any(), &dto.GetUserByIDRequest{ID: userID}).Return(candidateUser, nil)
				m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(candidate, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
					ID: opportunityID, Type: models.OpportunityTypeInternship, IsActive: true,
				}, nil)
				m.appRepo.EXPECT().ListByCandidateAndOpportunity(gomock.Any(), candidateID, opportunityID).Return([]models.Application{
					{ID: existingAppID, CandidateID: candidateID, OpportunityID: opportunityID, Status: models.ApplicationStatusShortlisted},
				}, nil)
			},
			expectedReason:  policy.ReasonAlreadyApplied,
			expectedAppID:   existingAppID,
			expectedAppStat: models.ApplicationStatusShortlisted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupApplicationService(t)
			tt.mockSetup(m)

			app, result, err := svc.Apply(context.Background(), &dto.ApplyRequest{
				UserID:        userID,
				OpportunityID: opportunityID,
				CoverLetter:   "I would like to apply.",
			})

			require.NoError(t, err)
			assert.Nil(t, app)
			require.NotNil(t, result)
			assert.False(t, result.OK)
			assert.Equal(t, tt.expectedReason, result.Reason)
			if tt.expectedAppID != uuid.Nil {
				assert.Equal(t, tt.expectedAppID, result.ExistingApplicationID)
				assert.Equal(t, tt.expectedAppStat, result.ExistingStatus)
			}
		})
	}
}

func TestApplicationService_Apply_IndustryAccountForbidden(t *testing.T) {
	svc, m := setupApplicationService(t)
	userID := uuid.New()

	m.userRepo.EXPECT().GetByID(gomock.Any(), &dto.GetUserByIDRequest{ID: userID}).Return(&models.User{
		ID: userID, UserType: models.UserTypeIndustry,
	}, nil)

	app, result, err := svc.Apply(context.Background(), &dto.ApplyRequest{
		UserID:        userID,
		OpportunityID: uuid.New(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	assert.Nil(t, app)
	assert.Nil(t, result)
}

func TestApplicationService_Withdraw(t *testing.T) {
	userID := uuid.New()
	candidateID := uuid.New()
	applicationID := uuid.New()

	tests := []struct {
		name          string
		mockSetup     func(m applicationServiceMocks)
		expectedError error
	}{
		{
			name: "Forbidden - Not Owner",
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, CandidateID: candidateID, Status: models.ApplicationStatusPending,
				}, nil)
				m.candidateRepo.EXPECT().GetByID(gomock.Any(), candidateID).Return(&models.Candidate{ID: candidateID, UserID: uuid.New()}, nil)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name: "Invalid Transition - Already Rejected",
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, CandidateID: candidateID, Status: models.ApplicationStatusRejected,
				}, nil)
				m.candidateRepo.EXPECT().GetByID(gomock.Any(), candidateID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
			},
			expectedError: services.ErrInvalidTransition,
		},
		{
			name: "Invalid Transition - Already Withdrawn",
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, CandidateID: candidateID, Status: models.ApplicationStatusWithdrawn,
				}, nil)
				m.candidateRepo.EXPECT().GetByID(gomock.Any(), candidateID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
			},
			expectedError: services.ErrInvalidTransition,
		},
		{
			name: "Not Found",
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupApplicationService(t)
			tt.mockSetup(m)

			app, err := svc.Withdraw(context.Background(), &dto.WithdrawApplicationRequest{ID: applicationID, UserID: userID})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
			assert.Nil(t, app)
		})
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	userID := uuid.New()
	industryID := uuid.New()
	opportunityID := uuid.New()
	applicationID := uuid.New()

	ownedOpp := &models.Opportunity{ID: opportunityID, IndustryID: industryID, IsActive: true}
	owningIndustry := &models.Industry{ID: industryID, UserID: userID}

	tests := []struct {
		name           string
		targetStatus   models.ApplicationStatus
		mockSetup      func(m applicationServiceMocks)
		expectedStatus models.ApplicationStatus
		expectedError  error
	}{
		{
			name:         "Success - Pending To Reviewed",
			targetStatus: models.ApplicationStatusReviewed,
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusPending,
				}, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(ownedOpp, nil)
				m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(owningIndustry, nil)
				m.appRepo.EXPECT().UpdateStatus(gomock.Any(), applicationID, models.ApplicationStatusReviewed).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusReviewed,
				}, nil)
			},
			expectedStatus: models.ApplicationStatusReviewed,
		},
		{
			name:         "Success - Interview To Selected",
			targetStatus: models.ApplicationStatusSelected,
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusInterviewScheduled,
				}, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(ownedOpp, nil)
				m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(owningIndustry, nil)
				m.appRepo.EXPECT().UpdateStatus(gomock.Any(), applicationID, models.ApplicationStatusSelected).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusSelected,
				}, nil)
			},
			expectedStatus: models.ApplicationStatusSelected,
		},
		{
			name:         "Forbidden - Not The Posting Industry",
			targetStatus: models.ApplicationStatusReviewed,
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusPending,
				}, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(ownedOpp, nil)
				m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Industry{ID: uuid.New(), UserID: userID}, nil)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name:         "Forbidden - No Company Profile",
			targetStatus: models.ApplicationStatusReviewed,
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusPending,
				}, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(ownedOpp, nil)
				m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name:         "Forbidden - Withdrawn Is Candidate Initiated",
			targetStatus: models.ApplicationStatusWithdrawn,
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusPending,
				}, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(ownedOpp, nil)
				m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(owningIndustry, nil)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name:         "Invalid Transition - Pending To Selected",
			targetStatus: models.ApplicationStatusSelected,
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusPending,
				}, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(ownedOpp, nil)
				m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(owningIndustry, nil)
			},
			expectedError: services.ErrInvalidTransition,
		},
		{
			name:         "Invalid Transition - Out Of Terminal Status",
			targetStatus: models.ApplicationStatusReviewed,
			mockSetup: func(m applicationServiceMocks) {
				m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(&models.Application{
					ID: applicationID, OpportunityID: opportunityID, Status: models.ApplicationStatusSelected,
				}, nil)
				m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(ownedOpp, nil)
				m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(owningIndustry, nil)
			},
			expectedError: services.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupApplicationService(t)
			tt.mockSetup(m)

			app, err := svc.UpdateStatus(context.Background(), &dto.UpdateApplicationStatusRequest{
				ID:     applicationID,
				UserID: userID,
				Status: tt.targetStatus,
			})

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				assert.Nil(t, app)
			} else {
				require.NoError(t, err)
				require.NotNil(t, app)
				assert.Equal(t, tt.expectedStatus, app.Status)
			}
		})
	}
}

func TestApplicationService_ListMine_BucketFilter(t *testing.T) {
	userID := uuid.New()
	candidateID := uuid.New()

	tests := []struct {
		name             string
		bucket           string
		expectedStatuses []models.ApplicationStatus
	}{
		{
			name:             "Pending Bucket",
			bucket:           "pending",
			expectedStatuses: []models.ApplicationStatus{models.ApplicationStatusPending, models.ApplicationStatusReviewed},
		},
		{
			name:             "In Progress Bucket",
			bucket:           "in_progress",
			expectedStatuses: []models.ApplicationStatus{models.ApplicationStatusShortlisted, models.ApplicationStatusInterviewScheduled},
		},
		{
			name:             "Closed Bucket",
			bucket:           "closed",
			expectedStatuses: []models.ApplicationStatus{models.ApplicationStatusRejected, models.ApplicationStatusWithdrawn},
		},
		{
			name:             "No Bucket Means No Filter",
			bucket:           "",
			expectedStatuses: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupApplicationService(t)

			m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
			m.appRepo.EXPECT().ListByCandidate(gomock.Any(), candidateID, tt.expectedStatuses, 20, 0).Return([]models.Application{}, nil)

			apps, err := svc.ListMine(context.Background(), &dto.ListMyApplicationsRequest{
				UserID: userID,
				Bucket: tt.bucket,
				Limit:  20,
				Offset: 0,
			})

			require.NoError(t, err)
			assert.NotNil(t, apps)
		})
	}
}

func TestApplicationService_GetByID_EitherParty(t *testing.T) {
	applicationID := uuid.New()
	opportunityID := uuid.New()
	candidateID := uuid.New()
	industryID := uuid.New()

	app := &models.Application{ID: applicationID, CandidateID: candidateID, OpportunityID: opportunityID, Status: models.ApplicationStatusPending}

	t.Run("Owning Candidate", func(t *testing.T) {
		svc, m := setupApplicationService(t)
		userID := uuid.New()

		m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(app, nil)
		m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)

		got, err := svc.GetByID(context.Background(), &dto.GetApplicationByIDRequest{ID: applicationID, UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("Reviewing Industry", func(t *testing.T) {
		svc, m := setupApplicationService(t)
		userID := uuid.New()

		m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(app, nil)
		m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
		m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
			ID: opportunityID, IndustryID: industryID,
		}, nil)
		m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Industry{ID: industryID, UserID: userID}, nil)

		got, err := svc.GetByID(context.Background(), &dto.GetApplicationByIDRequest{ID: applicationID, UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("Unrelated Account", func(t *testing.T) {
		svc, m := setupApplicationService(t)
		userID := uuid.New()

		m.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(app, nil)
		m.candidateRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: uuid.New(), UserID: userID}, nil)
		m.oppRepo.EXPECT().GetByID(gomock.Any(), &dto.GetOpportunityByIDRequest{ID: opportunityID}).Return(&models.Opportunity{
			ID: opportunityID, IndustryID: industryID,
		}, nil)
		m.industryRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

		got, err := svc.GetByID(context.Background(), &dto.GetApplicationByIDRequest{ID: applicationID, UserID: userID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Nil(t, got)
	})
}
