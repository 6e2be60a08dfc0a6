package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

type candidateService struct {
	candidateRepo storage.CandidateRepository
}

// NewCandidateService creates a new instance of CandidateService.
func NewCandidateService(candidateRepo storage.CandidateRepository) CandidateService {
	return &candidateService{candidateRepo: candidateRepo}
}

// GetByUserID returns the profile and its skills together, since every
// profile page renders both.
func (s *candidateService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Candidate, []models.CandidateSkill, error) {
	candidate, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching candidate profile")
	}

	skills, err := s.candidateRepo.ListSkills(ctx, candidate.ID)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching candidate skills")
	}

	return candidate, skills, nil
}

func (s *candidateService) Update(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating candidate profile")
	}
	return candidate, nil
}

func (s *candidateService) AddSkill(ctx context.Context, userID uuid.UUID, req *dto.AddSkillRequest) (*models.CandidateSkill, error) {
	candidate, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "fetching candidate profile")
	}

	skill, err := s.candidateRepo.AddSkill(ctx, candidate.ID, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("adding skill %q", req.SkillName))
	}
	return skill, nil
}

func (s *candidateService) RemoveSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	candidate, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return mapRepoError(err, "fetching candidate profile")
	}

	if err := s.candidateRepo.RemoveSkill(ctx, candidate.ID, skillID); err != nil {
		return mapRepoError(err, fmt.Sprintf("removing skill %s", skillID))
	}
	return nil
}

// Completion recomputes the profile completion score from the current rows.
// Never cached or stored, so it can't drift from the profile.
func (s *candidateService) Completion(ctx context.Context, userID uuid.UUID) (*policy.CompletionResult, error) {
	candidate, skills, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := policy.Completion(candidate, skills)
	return &result, nil
}
