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
)

func setupCandidateService(t *testing.T) (services.CandidateService, *mock_storage.MockCandidateRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCandidateRepo := mock_storage.NewMockCandidateRepository(ctrl)
	svc := services.NewCandidateService(mockCandidateRepo)
	return svc, mockCandidateRepo
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// fullCandidate fills every scored profile field.
func fullCandidate(id, userID uuid.UUID) *models.Candidate {
	dob := time.Date(2002, 5, 14, 0, 0, 0, 0, time.UTC)
	return &models.Candidate{
		ID:             id,
		UserID:         userID,
		FirstName:      "Asha",
		LastName:       "Patel",
		Phone:          "+91 98765 43210",
		DateOfBirth:    &dob,
		Bio:            "Backend developer in training.",
		City:           "Pune",
		State:          "Maharashtra",
		Country:        "India",
		College:        "COEP",
		Degree:         "B.Tech",
		FieldOfStudy:   "Computer Science",
		GraduationYear: intPtr(2025),
		CGPA:           floatPtr(8.7),
		ResumeURL:      "https://example.com/resume.pdf",
		PortfolioURL:   "https://asha.dev",
		LinkedinURL:    "https://linkedin.com/in/asha",
		GithubURL:      "https://github.com/asha",
	}
}

func threeSkills(candidateID uuid.UUID) []models.CandidateSkill {
	return []models.CandidateSkill{
		{ID: uuid.New(), CandidateID: candidateID, SkillName: "Go", Proficiency: models.ProficiencyIntermediate},
		{ID: uuid.New(), CandidateID: candidateID, SkillName: "PostgreSQL", Proficiency: models.ProficiencyIntermediate},
		{ID: uuid.New(), CandidateID: candidateID, SkillName: "Docker", Proficiency: models.ProficiencyBeginner},
	}
}

func TestCandidateService_Completion(t *testing.T) {
	userID := uuid.New()
	candidateID := uuid.New()

	tests := []struct {
		name               string
		candidate          *models.Candidate
		skills             []models.CandidateSkill
		expectedPercentage int
		expectedComplete   bool
	}{
		{
			name:               "Full Profile With Skills",
			candidate:          fullCandidate(candidateID, userID),
			skills:             threeSkills(candidateID),
			expectedPercentage: 100,
			expectedComplete:   true,
		},
		{
			name: "Name Only",
			candidate: &models.Candidate{
				ID: candidateID, UserID: userID,
				FirstName: "Asha", LastName: "Patel",
			},
			skills:             nil,
			expectedPercentage: 10, // 2 of 20 points
			expectedComplete:   false,
		},
		{
			name: "Full Profile Without Enough Skills",
			candidate: fullCandidate(candidateID, userID),
			skills: []models.CandidateSkill{
				{ID: uuid.New(), CandidateID: candidateID, SkillName: "Go", Proficiency: models.ProficiencyIntermediate},
			},
			expectedPercentage: 85, // 17 of 20: skill points need three entries
			expectedComplete:   true,
		},
		{
			name: "Just Below Threshold",
			candidate: func() *models.Candidate {
				c := fullCandidate(candidateID, userID)
				// Drop two fields: 15 of 20 points = 75%.
				c.PortfolioURL = ""
				c.GithubURL = ""
				return c
			}(),
			skills:             nil,
			expectedPercentage: 75,
			expectedComplete:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := setupCandidateService(t)

			mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(tt.candidate, nil)
			mockRepo.EXPECT().ListSkills(gomock.Any(), candidateID).Return(tt.skills, nil)

			result, err := svc.Completion(context.Background(), userID)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPercentage, result.Percentage)
			assert.Equal(t, tt.expectedComplete, result.IsComplete)
		})
	}
}

func TestCandidateService_AddSkill(t *testing.T) {
	userID := uuid.New()
	candidateID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := setupCandidateService(t)

		req := &dto.AddSkillRequest{SkillName: "Go", Proficiency: models.ProficiencyAdvanced}

		mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
		mockRepo.EXPECT().AddSkill(gomock.Any(), candidateID, req).Return(&models.CandidateSkill{
			ID: uuid.New(), CandidateID: candidateID, SkillName: "Go", Proficiency: models.ProficiencyAdvanced,
		}, nil)

		skill, err := svc.AddSkill(context.Background(), userID, req)

		require.NoError(t, err)
		assert.Equal(t, "Go", skill.SkillName)
	})

	t.Run("Duplicate Skill Conflict", func(t *testing.T) {
		svc, mockRepo := setupCandidateService(t)

		req := &dto.AddSkillRequest{SkillName: "Go", Proficiency: models.ProficiencyAdvanced}

		mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
		mockRepo.EXPECT().AddSkill(gomock.Any(), candidateID, req).Return(nil, storage.ErrConflict)

		skill, err := svc.AddSkill(context.Background(), userID, req)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
		assert.Nil(t, skill)
	})
}

func TestCandidateService_RemoveSkill(t *testing.T) {
	userID := uuid.New()
	candidateID := uuid.New()
	skillID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := setupCandidateService(t)

		mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
		mockRepo.EXPECT().RemoveSkill(gomock.Any(), candidateID, skillID).Return(nil)

		err := svc.RemoveSkill(context.Background(), userID, skillID)
		require.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mockRepo := setupCandidateService(t)

		mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Candidate{ID: candidateID, UserID: userID}, nil)
		mockRepo.EXPECT().RemoveSkill(gomock.Any(), candidateID, skillID).Return(storage.ErrNotFound)

		err := svc.RemoveSkill(context.Background(), userID, skillID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}
