// internal/storage/postgres/candidates.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nextintern-api/internal/models"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

// CandidateRepo implements the storage.CandidateRepository interface using PostgreSQL.
type CandidateRepo struct {
	db Querier
}

// NewCandidateRepo creates a new CandidateRepo.
func NewCandidateRepo(db *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{db: db}
}

// WithTx creates a new CandidateRepo bound to the transaction.
func (r *CandidateRepo) WithTx(tx pgx.Tx) storage.CandidateRepository {
	return &CandidateRepo{db: tx}
}

var _ storage.CandidateRepository = (*CandidateRepo)(nil)

const candidateColumns = `id, user_id, first_name, last_name, phone, date_of_birth, bio,
		city, state, country, college, degree, field_of_study, graduation_year, cgpa,
		resume_url, portfolio_url, linkedin_url, github_url, created_at, updated_at`

func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	var c models.Candidate
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&c.DateOfBirth,
		&c.Bio,
		&c.City,
		&c.State,
		&c.Country,
		&c.College,
		&c.Degree,
		&c.FieldOfStudy,
		&c.GraduationYear,
		&c.CGPA,
		&c.ResumeURL,
		&c.PortfolioURL,
		&c.LinkedinURL,
		&c.GithubURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create saves a new candidate profile at signup. Only name fields are set;
// everything else is filled in through Update.
func (r *CandidateRepo) Create(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	query := `
		INSERT INTO candidates (id, user_id, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + candidateColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.UserID, req.FirstName, req.LastName)

	candidate, err := scanCandidate(row)
	if err != nil {
		if isUniqueViolation(err, "candidates_user_id_key") {
			log.Printf("Error creating candidate: profile already exists for user %s\n", req.UserID)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating candidate for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	log.Printf("Candidate created successfully with ID: %s", candidate.ID)
	return candidate, nil
}

// GetByUserID retrieves a candidate profile by its owning account.
func (r *CandidateRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE user_id = $1`

	candidate, err := scanCandidate(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Candidate not found for user: %s\n", userID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning candidate by user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to get candidate by user %s: %w", userID, err)
	}

	return candidate, nil
}

// GetByID retrieves a candidate profile by its own ID.
func (r *CandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	candidate, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Candidate not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning candidate by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get candidate by ID %s: %w", id, err)
	}

	return candidate, nil
}

// Update modifies a candidate profile based on non-nil fields in the request DTO.
func (r *CandidateRepo) Update(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	var setClauses []string
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.FirstName != nil {
		addSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		addSet("last_name", *req.LastName)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.DateOfBirth != nil {
		addSet("date_of_birth", *req.DateOfBirth)
	}
	if req.Bio != nil {
		addSet("bio", *req.Bio)
	}
	if req.City != nil {
		addSet("city", *req.City)
	}
	if req.State != nil {
		addSet("state", *req.State)
	}
	if req.Country != nil {
		addSet("country", *req.Country)
	}
	if req.College != nil {
		addSet("college", *req.College)
	}
	if req.Degree != nil {
		addSet("degree", *req.Degree)
	}
	if req.FieldOfStudy != nil {
		addSet("field_of_study", *req.FieldOfStudy)
	}
	if req.GraduationYear != nil {
		addSet("graduation_year", *req.GraduationYear)
	}
	if req.CGPA != nil {
		addSet("cgpa", *req.CGPA)
	}
	if req.ResumeURL != nil {
		addSet("resume_url", *req.ResumeURL)
	}
	if req.PortfolioURL != nil {
		addSet("portfolio_url", *req.PortfolioURL)
	}
	if req.LinkedinURL != nil {
		addSet("linkedin_url", *req.LinkedinURL)
	}
	if req.GithubURL != nil {
		addSet("github_url", *req.GithubURL)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for candidate of user %s with no fields to change.", req.UserID)
		return nil, fmt.Errorf("no fields provided for update on candidate of user %s", req.UserID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.UserID)

	query := fmt.Sprintf(`
		UPDATE candidates
		SET %s
		WHERE user_id = $%d
		RETURNING `+candidateColumns,
		strings.Join(setClauses, ", "), len(args))

	candidate, err := scanCandidate(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Candidate not found for update (user %s)\n", req.UserID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating candidate of user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to update candidate of user %s: %w", req.UserID, err)
	}

	log.Printf("Candidate updated successfully: %s", candidate.ID)
	return candidate, nil
}

// ListSkills retrieves all skills for a candidate, newest first.
func (r *CandidateRepo) ListSkills(ctx context.Context, candidateID uuid.UUID) ([]models.CandidateSkill, error) {
	query := `
		SELECT id, candidate_id, skill_name, proficiency, years_of_experience, created_at
		FROM candidate_skills
		WHERE candidate_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		log.Printf("Error querying skills for candidate %s: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to query candidate skills: %w", err)
	}
	defer rows.Close()

	skills, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CandidateSkill])
	if err != nil {
		log.Printf("Error scanning skills for candidate %s: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to scan candidate skills: %w", err)
	}

	if skills == nil {
		skills = []models.CandidateSkill{}
	}

	return skills, nil
}

// AddSkill attaches one skill to a candidate profile.
func (r *CandidateRepo) AddSkill(ctx context.Context, candidateID uuid.UUID, req *dto.AddSkillRequest) (*models.CandidateSkill, error) {
	query := `
		INSERT INTO candidate_skills (id, candidate_id, skill_name, proficiency, years_of_experience, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, candidate_id, skill_name, proficiency, years_of_experience, created_at
	`

	row := r.db.QueryRow(ctx, query, uuid.New(), candidateID, req.SkillName, req.Proficiency, req.YearsOfExperience)

	var skill models.CandidateSkill
	err := row.Scan(
		&skill.ID,
		&skill.CandidateID,
		&skill.SkillName,
		&skill.Proficiency,
		&skill.YearsOfExperience,
		&skill.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "candidate_skills_candidate_id_skill_name_key") {
			log.Printf("Error adding skill: %q already present on candidate %s\n", req.SkillName, candidateID)
			return nil, storage.ErrConflict
		}
		log.Printf("Error adding skill to candidate %s: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to add skill: %w", err)
	}

	return &skill, nil
}

// RemoveSkill detaches one skill from a candidate profile.
func (r *CandidateRepo) RemoveSkill(ctx context.Context, candidateID, skillID uuid.UUID) error {
	query := `DELETE FROM candidate_skills WHERE id = $1 AND candidate_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, skillID, candidateID)
	if err != nil {
		log.Printf("Error removing skill %s from candidate %s: %v\n", skillID, candidateID, err)
		return fmt.Errorf("failed to remove skill %s: %w", skillID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Skill not found for removal: %s (candidate %s)\n", skillID, candidateID)
		return storage.ErrNotFound
	}

	return nil
}
