// internal/storage/postgres/applications.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nextintern-api/internal/models"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = "id, candidate_id, opportunity_id, status, cover_letter, applied_at, updated_at"

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.CandidateID,
		&a.OpportunityID,
		&a.Status,
		&a.CoverLetter,
		&a.AppliedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new pending application. The partial unique index
// applications_active_candidate_opportunity_idx (on candidate_id,
// opportunity_id WHERE status <> 'WITHDRAWN') is the last line of defense
// against two concurrent submissions; a violation surfaces as
// ErrDuplicateApplication.
func (r *ApplicationRepo) Create(ctx context.Context, candidateID uuid.UUID, req *dto.ApplyRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, candidate_id, opportunity_id, status, cover_letter, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + applicationColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), candidateID, req.OpportunityID, models.ApplicationStatusPending, req.CoverLetter)

	app, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err, "applications_active_candidate_opportunity_idx") {
			log.Printf("Duplicate application: candidate %s already applied to opportunity %s\n", candidateID, req.OpportunityID)
			return nil, storage.ErrDuplicateApplication
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return app, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	return app, nil
}

// ListByCandidate retrieves a candidate's applications, optionally narrowed
// to a status set, newest first.
func (r *ApplicationRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID, statuses []models.ApplicationStatus, limit, offset int) ([]models.Application, error) {
	baseQuery := `SELECT ` + applicationColumns + ` FROM applications`

	conditions := []string{"candidate_id = $1"}
	args := []interface{}{candidateID}

	if len(statuses) > 0 {
		args = append(args, statuses)
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	query := buildListQuery(baseQuery, conditions, &args, "applied_at DESC", offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying applications by candidate %s: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to query applications by candidate: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications by candidate %s: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to scan applications by candidate: %w", err)
	}

	if apps == nil {
		apps = []models.Application{}
	}

	return apps, nil
}

// ListByCandidateAndOpportunity retrieves every application a candidate has
// made to one opportunity, including withdrawn ones. Used by the
// eligibility check.
func (r *ApplicationRepo) ListByCandidateAndOpportunity(ctx context.Context, candidateID, opportunityID uuid.UUID) ([]models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE candidate_id = $1 AND opportunity_id = $2
		ORDER BY applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, candidateID, opportunityID)
	if err != nil {
		log.Printf("Error querying applications for candidate %s on opportunity %s: %v\n", candidateID, opportunityID, err)
		return nil, fmt.Errorf("failed to query applications for candidate and opportunity: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications for candidate %s on opportunity %s: %v\n", candidateID, opportunityID, err)
		return nil, fmt.Errorf("failed to scan applications for candidate and opportunity: %w", err)
	}

	if apps == nil {
		apps = []models.Application{}
	}

	return apps, nil
}

// ListByOpportunity retrieves applicants for one listing, optionally
// narrowed by status, oldest first so review order matches arrival order.
func (r *ApplicationRepo) ListByOpportunity(ctx context.Context, req *dto.ListApplicationsByOpportunityRequest) ([]models.Application, error) {
	baseQuery := `SELECT ` + applicationColumns + ` FROM applications`

	conditions := []string{"opportunity_id = $1"}
	args := []interface{}{req.OpportunityID}

	if req.Status != nil {
		args = append(args, *req.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := buildListQuery(baseQuery, conditions, &args, "applied_at ASC", req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying applications by opportunity %s: %v\n", req.OpportunityID, err)
		return nil, fmt.Errorf("failed to query applications by opportunity: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications by opportunity %s: %v\n", req.OpportunityID, err)
		return nil, fmt.Errorf("failed to scan applications by opportunity: %w", err)
	}

	if apps == nil {
		apps = []models.Application{}
	}

	return apps, nil
}

// UpdateStatus moves an application to a new status. Transition legality is
// the service layer's responsibility; this just writes.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := `
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status of application %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update status of application %s: %w", id, err)
	}

	log.Printf("Application %s moved to status %s", app.ID, app.Status)
	return app, nil
}
