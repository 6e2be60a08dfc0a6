package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nextintern-api/internal/api/handlers"
	"nextintern-api/internal/api/middleware"
	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/transport/dto"
)

const testJWTSecret = "test-secret-key"

// MockApplicationService is a mock implementation of services.ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, *policy.EligibilityResult, error) {
	args := m.Called(ctx, req)
	var app *models.Application
	if args.Get(0) != nil {
		app = args.Get(0).(*models.Application)
	}
	var result *policy.EligibilityResult
	if args.Get(1) != nil {
		result = args.Get(1).(*policy.EligibilityResult)
	}
	return app, result, args.Error(2)
}

func (m *MockApplicationService) Withdraw(ctx context.Context, req *dto.WithdrawApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListMine(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationService) ListByOpportunity(ctx context.Context, req *dto.ListApplicationsByOpportunityRequest) ([]models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func setupApplicationRouter(svc *MockApplicationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := handlers.NewApplicationHandler(svc, validator.New())

	group := router.Group("/api/v1/applications")
	group.Use(middleware.JWTAuthMiddleware(testJWTSecret))
	group.POST("", handler.Apply)

	return router
}

func applyRequest(t *testing.T, router *gin.Engine, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestApplicationHandler_Apply(t *testing.T) {
	userID := uuid.New()
	opportunityID := uuid.New()
	existingAppID := uuid.New()

	token, err := generateTestToken(userID, models.UserTypeCandidate, false, testJWTSecret, 15*time.Minute)
	require.NoError(t, err)

	requestBody := gin.H{"opportunity_id": opportunityID, "cover_letter": "Hello"}

	t.Run("Unauthorized Without Token", func(t *testing.T) {
		svc := new(MockApplicationService)
		router := setupApplicationRouter(svc)

		w := applyRequest(t, router, "", requestBody)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "Apply")
	})

	t.Run("Unauthorized With Expired Token", func(t *testing.T) {
		svc := new(MockApplicationService)
		router := setupApplicationRouter(svc)

		expired, err := generateTestToken(userID, models.UserTypeCandidate, false, testJWTSecret, -time.Minute)
		require.NoError(t, err)

		w := applyRequest(t, router, expired, requestBody)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("Created On Success", func(t *testing.T) {
		svc := new(MockApplicationService)
		router := setupApplicationRouter(svc)

		svc.On("Apply", mock.Anything, mock.MatchedBy(func(req *dto.ApplyRequest) bool {
			return req.UserID == userID && req.OpportunityID == opportunityID
		})).Return(&models.Application{
			ID:            uuid.New(),
			OpportunityID: opportunityID,
			Status:        models.ApplicationStatusPending,
		}, nil, nil).Once()

		w := applyRequest(t, router, token, requestBody)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.ApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.ApplicationStatusPending, resp.Status)
		assert.Equal(t, "pending", resp.Bucket)
		svc.AssertExpectations(t)
	})

	t.Run("Premium Denial Maps To 403", func(t *testing.T) {
		svc := new(MockApplicationService)
		router := setupApplicationRouter(svc)

		svc.On("Apply", mock.Anything, mock.Anything).Return(nil, &policy.EligibilityResult{
			Reason: policy.ReasonPremiumRequired,
		}, nil).Once()

		w := applyRequest(t, router, token, requestBody)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp dto.EligibilityDenialResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(policy.ReasonPremiumRequired), resp.Reason)
		assert.Nil(t, resp.ExistingApplicationID)
	})

	t.Run("Already Applied Maps To 409 With Existing ID", func(t *testing.T) {
		svc := new(MockApplicationService)
		router := setupApplicationRouter(svc)

		svc.On("Apply", mock.Anything, mock.Anything).Return(nil, &policy.EligibilityResult{
			Reason:                policy.ReasonAlreadyApplied,
			ExistingApplicationID: existingAppID,
			ExistingStatus:        models.ApplicationStatusShortlisted,
		}, nil).Once()

		w := applyRequest(t, router, token, requestBody)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.EligibilityDenialResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(policy.ReasonAlreadyApplied), resp.Reason)
		require.NotNil(t, resp.ExistingApplicationID)
		assert.Equal(t, existingAppID, *resp.ExistingApplicationID)
		assert.Equal(t, string(models.ApplicationStatusShortlisted), resp.ExistingStatus)
	})

	t.Run("Deadline Passed Maps To 409", func(t *testing.T) {
		svc := new(MockApplicationService)
		router := setupApplicationRouter(svc)

		svc.On("Apply", mock.Anything, mock.Anything).Return(nil, &policy.EligibilityResult{
			Reason: policy.ReasonDeadlinePassed,
		}, nil).Once()

		w := applyRequest(t, router, token, requestBody)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "deadline")
	})

	t.Run("Bad Request Without Opportunity ID", func(t *testing.T) {
		svc := new(MockApplicationService)
		router := setupApplicationRouter(svc)

		w := applyRequest(t, router, token, gin.H{"cover_letter": "Hello"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Apply")
	})
}
