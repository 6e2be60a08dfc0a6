// internal/storage/postgres/industries.go
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

// IndustryRepo implements the storage.IndustryRepository interface using PostgreSQL.
type IndustryRepo struct {
	db Querier
}

// NewIndustryRepo creates a new IndustryRepo.
func NewIndustryRepo(db *pgxpool.Pool) *IndustryRepo {
	return &IndustryRepo{db: db}
}

// WithTx creates a new IndustryRepo bound to the transaction.
func (r *IndustryRepo) WithTx(tx pgx.Tx) storage.IndustryRepository {
	return &IndustryRepo{db: tx}
}

var _ storage.IndustryRepository = (*IndustryRepo)(nil)

const industryColumns = `id, user_id, company_name, industry, description, city, state, country,
		website, contact_email, is_verified, show_company_name, anonymous_id, created_at, updated_at`

func scanIndustry(row pgx.Row) (*models.Industry, error) {
	var ind models.Industry
	err := row.Scan(
		&ind.ID,
		&ind.UserID,
		&ind.CompanyName,
		&ind.Industry,
		&ind.Description,
		&ind.City,
		&ind.State,
		&ind.Country,
		&ind.Website,
		&ind.ContactEmail,
		&ind.IsVerified,
		&ind.ShowCompanyName,
		&ind.AnonymousID,
		&ind.CreatedAt,
		&ind.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ind, nil
}

// Create saves a new company profile at signup. The anonymous identifier is
// assigned once here and never updated afterwards.
func (r *IndustryRepo) Create(ctx context.Context, req *dto.CreateIndustryRequest, anonymousID string) (*models.Industry, error) {
	query := `
		INSERT INTO industries (id, user_id, company_name, industry, anonymous_id, show_company_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, false, NOW(), NOW())
		RETURNING ` + industryColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.UserID, req.CompanyName, req.Industry, anonymousID)

	industry, err := scanIndustry(row)
	if err != nil {
		if isUniqueViolation(err, "industries_user_id_key") {
			log.Printf("Error creating industry: profile already exists for user %s\n", req.UserID)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating industry for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to create industry: %w", err)
	}

	log.Printf("Industry created successfully with ID: %s", industry.ID)
	return industry, nil
}

// GetByUserID retrieves a company profile by its owning account.
func (r *IndustryRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Industry, error) {
	query := `SELECT ` + industryColumns + ` FROM industries WHERE user_id = $1`

	industry, err := scanIndustry(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Industry not found for user: %s\n", userID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning industry by user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to get industry by user %s: %w", userID, err)
	}

	return industry, nil
}

// GetByID retrieves a company profile by its own ID.
func (r *IndustryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Industry, error) {
	query := `SELECT ` + industryColumns + ` FROM industries WHERE id = $1`

	industry, err := scanIndustry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Industry not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning industry by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get industry by ID %s: %w", id, err)
	}

	return industry, nil
}

// GetByIDs retrieves multiple company profiles at once, keyed by ID. Used
// when assembling listing pages so each page costs one query.
func (r *IndustryRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Industry, error) {
	result := make(map[uuid.UUID]models.Industry, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT ` + industryColumns + ` FROM industries WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		log.Printf("Error querying industries by IDs: %v\n", err)
		return nil, fmt.Errorf("failed to query industries by IDs: %w", err)
	}
	defer rows.Close()

	industries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Industry])
	if err != nil {
		log.Printf("Error scanning industries by IDs: %v\n", err)
		return nil, fmt.Errorf("failed to scan industries by IDs: %w", err)
	}

	for _, ind := range industries {
		result[ind.ID] = ind
	}

	return result, nil
}

// Update modifies a company profile based on non-nil fields in the request
// DTO. The anonymous identifier is never part of the SET list.
func (r *IndustryRepo) Update(ctx context.Context, req *dto.UpdateIndustryRequest) (*models.Industry, error) {
	var setClauses []string
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.CompanyName != nil {
		addSet("company_name", *req.CompanyName)
	}
	if req.Industry != nil {
		addSet("industry", *req.Industry)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
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
	if req.Website != nil {
		addSet("website", *req.Website)
	}
	if req.ContactEmail != nil {
		addSet("contact_email", *req.ContactEmail)
	}
	if req.ShowCompanyName != nil {
		addSet("show_company_name", *req.ShowCompanyName)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for industry of user %s with no fields to change.", req.UserID)
		return nil, fmt.Errorf("no fields provided for update on industry of user %s", req.UserID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.UserID)

	query := fmt.Sprintf(`
		UPDATE industries
		SET %s
		WHERE user_id = $%d
		RETURNING `+industryColumns,
		strings.Join(setClauses, ", "), len(args))

	industry, err := scanIndustry(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Industry not found for update (user %s)\n", req.UserID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating industry of user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to update industry of user %s: %w", req.UserID, err)
	}

	log.Printf("Industry updated successfully: %s", industry.ID)
	return industry, nil
}
