package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_storage "nextintern-api/internal/mocks"
	"nextintern-api/internal/models"
	"nextintern-api/internal/services"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret       = "test-secret-key"
	jwtDuration     = 15 * time.Minute
	refreshDuration = 7 * 24 * time.Hour
)

// setupUserService builds the service on a mocked user repository. The pool
// and redis client are nil, so only paths that fail before token issuance
// can run here; Register and the refresh rotation are covered by the
// integration suite.
func setupUserService(t *testing.T) (services.UserService, *mock_storage.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockCandidateRepo := mock_storage.NewMockCandidateRepository(ctrl)
	mockIndustryRepo := mock_storage.NewMockIndustryRepository(ctrl)

	svc := services.NewUserService(nil, mockUserRepo, mockCandidateRepo, mockIndustryRepo, nil, jwtSecret, jwtDuration, refreshDuration)
	return svc, mockUserRepo
}

func TestUserService_Login_Failures(t *testing.T) {
	testUserID := uuid.New()
	correctPassword := "password123"
	correctHashedPassword, _ := bcrypt.GenerateFromPassword([]byte(correctPassword), bcrypt.DefaultCost)
	repoErrDbConnection := errors.New("db connection error")

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		mockSetup     func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest)
		expectedError error
		errorContains string
	}{
		{
			name: "Invalid Password",
			req: &dto.LoginRequest{
				Email:    "test@example.com",
				Password: "wrongpassword",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: req.Email}).Return(&models.User{
					ID:           testUserID,
					Email:        req.Email,
					PasswordHash: string(correctHashedPassword),
					UserType:     models.UserTypeCandidate,
				}, nil).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name: "User Not Found",
			req: &dto.LoginRequest{
				Email:    "notfound@example.com",
				Password: correctPassword,
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: req.Email}).Return(nil, storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name: "Repository Error on GetByEmail",
			req: &dto.LoginRequest{
				Email:    "error@example.com",
				Password: correctPassword,
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: req.Email}).Return(nil, repoErrDbConnection).Times(1)
			},
			expectedError: repoErrDbConnection,
			errorContains: "internal error during login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo := setupUserService(t)
			tt.mockSetup(mockUserRepo, tt.req)

			user, access, refresh, err := svc.Login(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
			if tt.errorContains != "" {
				assert.Contains(t, err.Error(), tt.errorContains)
			}
			assert.Nil(t, user)
			assert.Empty(t, access)
			assert.Empty(t, refresh)
		})
	}
}

func TestUserService_GetByID(t *testing.T) {
	testUserID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, mockUserRepo := setupUserService(t)

		mockUserRepo.EXPECT().GetByID(gomock.Any(), &dto.GetUserByIDRequest{ID: testUserID}).Return(&models.User{
			ID:        testUserID,
			Email:     "test@example.com",
			UserType:  models.UserTypeCandidate,
			IsPremium: true,
		}, nil).Times(1)

		user, err := svc.GetByID(context.Background(), &dto.GetUserByIDRequest{ID: testUserID})

		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.True(t, user.IsPremium)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mockUserRepo := setupUserService(t)

		mockUserRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).Times(1)

		user, err := svc.GetByID(context.Background(), &dto.GetUserByIDRequest{ID: uuid.New()})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		assert.Nil(t, user)
	})
}

func TestUserService_SetPremium(t *testing.T) {
	testUserID := uuid.New()

	// The success path reissues the token pair and needs redis; it is
	// covered at the handler level and by the integration suite.
	t.Run("Not Found", func(t *testing.T) {
		svc, mockUserRepo := setupUserService(t)

		mockUserRepo.EXPECT().SetPremium(gomock.Any(), testUserID, true).Return(nil, storage.ErrNotFound).Times(1)

		user, access, refresh, err := svc.SetPremium(context.Background(), testUserID, true)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		assert.Nil(t, user)
		assert.Empty(t, access)
		assert.Empty(t, refresh)
	})
}
