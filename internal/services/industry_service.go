package services

import (
	"context"

	"github.com/google/uuid"

	"nextintern-api/internal/models"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

type industryService struct {
	industryRepo storage.IndustryRepository
}

// NewIndustryService creates a new instance of IndustryService.
func NewIndustryService(industryRepo storage.IndustryRepository) IndustryService {
	return &industryService{industryRepo: industryRepo}
}

func (s *industryService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Industry, error) {
	industry, err := s.industryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "fetching company profile")
	}
	return industry, nil
}

func (s *industryService) Update(ctx context.Context, req *dto.UpdateIndustryRequest) (*models.Industry, error) {
	industry, err := s.industryRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating company profile")
	}
	return industry, nil
}
