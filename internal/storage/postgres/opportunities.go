// internal/storage/postgres/opportunities.go
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

// OpportunityRepo implements the storage.OpportunityRepository interface using PostgreSQL.
type OpportunityRepo struct {
	db Querier
}

// NewOpportunityRepo creates a new OpportunityRepo.
func NewOpportunityRepo(db *pgxpool.Pool) *OpportunityRepo {
	return &OpportunityRepo{db: db}
}

// WithTx creates a new OpportunityRepo bound to the transaction.
func (r *OpportunityRepo) WithTx(tx pgx.Tx) storage.OpportunityRepository {
	return &OpportunityRepo{db: tx}
}

var _ storage.OpportunityRepository = (*OpportunityRepo)(nil)

const opportunityColumns = `id, industry_id, title, description, type, work_type, category, location,
		stipend, skills, is_active, is_premium_only, application_count, view_count,
		application_deadline, start_date, created_at, updated_at`

func scanOpportunity(row pgx.Row) (*models.Opportunity, error) {
	var o models.Opportunity
	err := row.Scan(
		&o.ID,
		&o.IndustryID,
		&o.Title,
		&o.Description,
		&o.Type,
		&o.WorkType,
		&o.Category,
		&o.Location,
		&o.Stipend,
		&o.Skills,
		&o.IsActive,
		&o.IsPremiumOnly,
		&o.ApplicationCount,
		&o.ViewCount,
		&o.ApplicationDeadline,
		&o.StartDate,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create saves a new listing.
func (r *OpportunityRepo) Create(ctx context.Context, req *dto.CreateOpportunityRequest) (*models.Opportunity, error) {
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	query := `
		INSERT INTO opportunities (id, industry_id, title, description, type, work_type, category, location,
			stipend, skills, is_active, is_premium_only, application_count, view_count,
			application_deadline, start_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true, $11, 0, 0, $12, $13, NOW(), NOW())
		RETURNING ` + opportunityColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.IndustryID,
		req.Title,
		req.Description,
		req.Type,
		req.WorkType,
		req.Category,
		req.Location,
		req.Stipend,
		skills,
		req.IsPremiumOnly,
		req.ApplicationDeadline,
		req.StartDate,
	)

	opp, err := scanOpportunity(row)
	if err != nil {
		if isUniqueViolation(err, "") {
			log.Printf("Error creating opportunity: conflict: %v\n", err)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating opportunity: %v\n", err)
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	log.Printf("Opportunity created successfully with ID: %s", opp.ID)
	return opp, nil
}

// GetByID retrieves a specific listing by its ID.
func (r *OpportunityRepo) GetByID(ctx context.Context, req *dto.GetOpportunityByIDRequest) (*models.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1`

	opp, err := scanOpportunity(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Opportunity not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning opportunity by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get opportunity by ID %s: %w", req.ID, err)
	}

	return opp, nil
}

// List retrieves active listings with optional filters. When PublicOnly is
// set, freelancing and premium-only listings are excluded at the query level
// so unauthenticated pages never enumerate them.
func (r *OpportunityRepo) List(ctx context.Context, req *dto.ListOpportunitiesRequest) ([]models.Opportunity, error) {
	baseQuery := `SELECT ` + opportunityColumns + ` FROM opportunities`

	conditions := []string{"is_active = true"}
	args := []interface{}{}

	if req.PublicOnly {
		args = append(args, models.OpportunityTypeFreelancing)
		conditions = append(conditions, fmt.Sprintf("type <> $%d", len(args)))
		conditions = append(conditions, "is_premium_only = false")
	}
	if req.Type != nil {
		args = append(args, *req.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if req.WorkType != nil {
		args = append(args, *req.WorkType)
		conditions = append(conditions, fmt.Sprintf("work_type = $%d", len(args)))
	}
	if req.Category != nil {
		args = append(args, *req.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if req.Location != nil {
		args = append(args, "%"+*req.Location+"%")
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	query := buildListQuery(baseQuery, conditions, &args, "created_at DESC", req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying opportunities: %v\n", err)
		return nil, fmt.Errorf("failed to query opportunities: %w", err)
	}
	defer rows.Close()

	opps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Opportunity])
	if err != nil {
		log.Printf("Error scanning opportunities: %v\n", err)
		return nil, fmt.Errorf("failed to scan opportunities: %w", err)
	}

	if opps == nil {
		opps = []models.Opportunity{}
	}

	return opps, nil
}

// ListByIndustry retrieves listings posted by a specific industry.
func (r *OpportunityRepo) ListByIndustry(ctx context.Context, req *dto.ListOpportunitiesByIndustryRequest) ([]models.Opportunity, error) {
	baseQuery := `SELECT ` + opportunityColumns + ` FROM opportunities`

	conditions := []string{"industry_id = $1"}
	args := []interface{}{req.IndustryID}

	if req.ActiveOnly {
		conditions = append(conditions, "is_active = true")
	}

	query := buildListQuery(baseQuery, conditions, &args, "created_at DESC", req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying opportunities by industry %s: %v\n", req.IndustryID, err)
		return nil, fmt.Errorf("failed to query opportunities by industry: %w", err)
	}
	defer rows.Close()

	opps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Opportunity])
	if err != nil {
		log.Printf("Error scanning opportunities by industry %s: %v\n", req.IndustryID, err)
		return nil, fmt.Errorf("failed to scan opportunities by industry: %w", err)
	}

	if opps == nil {
		opps = []models.Opportunity{}
	}

	return opps, nil
}

// Update modifies a listing based on non-nil fields in the request DTO.
func (r *OpportunityRepo) Update(ctx context.Context, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error) {
	var setClauses []string
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Category != nil {
		addSet("category", *req.Category)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Stipend != nil {
		addSet("stipend", *req.Stipend)
	}
	if req.Skills != nil {
		addSet("skills", req.Skills)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}
	if req.IsPremiumOnly != nil {
		addSet("is_premium_only", *req.IsPremiumOnly)
	}
	if req.ApplicationDeadline != nil {
		addSet("application_deadline", *req.ApplicationDeadline)
	}
	if req.StartDate != nil {
		addSet("start_date", *req.StartDate)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for opportunity %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("no fields provided for update on opportunity %s", req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE opportunities
		SET %s
		WHERE id = $%d
		RETURNING `+opportunityColumns,
		strings.Join(setClauses, ", "), len(args))

	opp, err := scanOpportunity(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Opportunity not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating opportunity %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update opportunity %s: %w", req.ID, err)
	}

	log.Printf("Opportunity updated successfully: %s", opp.ID)
	return opp, nil
}

// Delete removes a listing by its ID. A listing with applications still in
// flight is not deletable; owners deactivate it instead so applicants keep
// their history.
func (r *OpportunityRepo) Delete(ctx context.Context, req *dto.DeleteOpportunityRequest) error {
	query := `
		DELETE FROM opportunities
		WHERE id = $1
		  AND NOT EXISTS (
		      SELECT 1 FROM applications
		      WHERE opportunity_id = $1 AND status <> 'WITHDRAWN')`

	cmdTag, err := r.db.Exec(ctx, query, req.ID)
	if err != nil {
		log.Printf("Error deleting opportunity %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete opportunity %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		checkErr := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM opportunities WHERE id = $1)`, req.ID).Scan(&exists)
		if checkErr != nil {
			log.Printf("Error checking opportunity %s after blocked delete: %v\n", req.ID, checkErr)
			return fmt.Errorf("failed to delete opportunity %s: %w", req.ID, checkErr)
		}
		if exists {
			log.Printf("Opportunity %s has live applications, delete blocked\n", req.ID)
			return storage.ErrConflict
		}
		log.Printf("Opportunity not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("Opportunity deleted successfully: %s", req.ID)
	return nil
}

// IncrementViewCount bumps the view counter. Best effort; callers ignore a
// missing row.
func (r *OpportunityRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE opportunities SET view_count = view_count + 1 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		log.Printf("Error incrementing view count for opportunity %s: %v\n", id, err)
		return fmt.Errorf("failed to increment view count for opportunity %s: %w", id, err)
	}
	return nil
}

// IncrementApplicationCount adjusts the application counter by delta
// (negative on withdrawal).
func (r *OpportunityRepo) IncrementApplicationCount(ctx context.Context, id uuid.UUID, delta int) error {
	query := `UPDATE opportunities SET application_count = application_count + $1 WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		log.Printf("Error adjusting application count for opportunity %s: %v\n", id, err)
		return fmt.Errorf("failed to adjust application count for opportunity %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
