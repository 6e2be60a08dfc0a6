package services

import (
	"errors"
	"fmt"
	"log"

	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

// mapRepoError maps storage errors to service errors.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrDuplicateApplication) {
		return fmt.Errorf("%w: %s (duplicate application)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrDuplicateSave) {
		return fmt.Errorf("%w: %s (already saved)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		UserType:  user.UserType,
		IsPremium: user.IsPremium,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func MapCandidateToResponse(candidate *models.Candidate, skills []models.CandidateSkill) dto.CandidateResponse {
	skillResponses := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		skillResponses = append(skillResponses, dto.SkillResponse{
			ID:                s.ID,
			SkillName:         s.SkillName,
			Proficiency:       s.Proficiency,
			YearsOfExperience: s.YearsOfExperience,
		})
	}
	return dto.CandidateResponse{
		ID:             candidate.ID,
		UserID:         candidate.UserID,
		FirstName:      candidate.FirstName,
		LastName:       candidate.LastName,
		Phone:          candidate.Phone,
		DateOfBirth:    candidate.DateOfBirth,
		Bio:            candidate.Bio,
		City:           candidate.City,
		State:          candidate.State,
		Country:        candidate.Country,
		College:        candidate.College,
		Degree:         candidate.Degree,
		FieldOfStudy:   candidate.FieldOfStudy,
		GraduationYear: candidate.GraduationYear,
		CGPA:           candidate.CGPA,
		ResumeURL:      candidate.ResumeURL,
		PortfolioURL:   candidate.PortfolioURL,
		LinkedinURL:    candidate.LinkedinURL,
		GithubURL:      candidate.GithubURL,
		Skills:         skillResponses,
		CreatedAt:      candidate.CreatedAt,
		UpdatedAt:      candidate.UpdatedAt,
	}
}

func MapIndustryToResponse(industry *models.Industry) dto.IndustryResponse {
	return dto.IndustryResponse{
		ID:              industry.ID,
		UserID:          industry.UserID,
		CompanyName:     industry.CompanyName,
		Industry:        industry.Industry,
		Description:     industry.Description,
		City:            industry.City,
		State:           industry.State,
		Country:         industry.Country,
		Website:         industry.Website,
		ContactEmail:    industry.ContactEmail,
		IsVerified:      industry.IsVerified,
		ShowCompanyName: industry.ShowCompanyName,
		CreatedAt:       industry.CreatedAt,
		UpdatedAt:       industry.UpdatedAt,
	}
}

func MapOpportunityToResponse(opp *models.Opportunity) dto.OpportunityResponse {
	return dto.OpportunityResponse{
		ID:                  opp.ID,
		IndustryID:          opp.IndustryID,
		Title:               opp.Title,
		Description:         opp.Description,
		Type:                opp.Type,
		WorkType:            opp.WorkType,
		Category:            opp.Category,
		Location:            opp.Location,
		Stipend:             opp.Stipend,
		Skills:              opp.Skills,
		IsActive:            opp.IsActive,
		IsPremiumOnly:       opp.IsPremiumOnly,
		ApplicationCount:    opp.ApplicationCount,
		ViewCount:           opp.ViewCount,
		ApplicationDeadline: opp.ApplicationDeadline,
		StartDate:           opp.StartDate,
		CreatedAt:           opp.CreatedAt,
		UpdatedAt:           opp.UpdatedAt,
	}
}

// MapViewToResponse flattens a redacted opportunity view into the wire shape.
func MapViewToResponse(view policy.OpportunityView) dto.OpportunityViewResponse {
	opp := view.Opportunity
	return dto.OpportunityViewResponse{
		ID:                  opp.ID,
		Title:               opp.Title,
		Description:         opp.Description,
		Type:                opp.Type,
		WorkType:            opp.WorkType,
		Category:            opp.Category,
		Location:            opp.Location,
		Stipend:             opp.Stipend,
		Skills:              opp.Skills,
		IsPremiumOnly:       opp.IsPremiumOnly,
		ApplicationDeadline: opp.ApplicationDeadline,
		StartDate:           opp.StartDate,
		DisplayName:         view.DisplayName,
		ShowDetails:         view.ShowDetails,
		CanApply:            view.CanApply,
		Saved:               view.Saved,
		CompanySector:       view.CompanySector,
		CompanyVerified:     view.CompanyVerified,
		CompanyDescription:  view.CompanyDescription,
		CompanyCity:         view.CompanyCity,
		CompanyState:        view.CompanyState,
		CompanyCountry:      view.CompanyCountry,
		CompanyWebsite:      view.CompanyWebsite,
		CompanyContact:      view.CompanyContact,
	}
}

func MapApplicationToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:            app.ID,
		CandidateID:   app.CandidateID,
		OpportunityID: app.OpportunityID,
		Status:        app.Status,
		Bucket:        string(policy.BucketFor(app.Status)),
		CoverLetter:   app.CoverLetter,
		AppliedAt:     app.AppliedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}

func MapSavedToResponse(saved *models.SavedOpportunity) dto.SavedOpportunityResponse {
	return dto.SavedOpportunityResponse{
		ID:            saved.ID,
		CandidateID:   saved.CandidateID,
		OpportunityID: saved.OpportunityID,
		SavedAt:       saved.CreatedAt,
	}
}
