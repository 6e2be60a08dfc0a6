// internal/storage/postgres/saved.go
package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nextintern-api/internal/models"
	"nextintern-api/internal/storage"
)

// SavedOpportunityRepo implements the storage.SavedOpportunityRepository interface using PostgreSQL.
type SavedOpportunityRepo struct {
	db Querier
}

// NewSavedOpportunityRepo creates a new SavedOpportunityRepo.
func NewSavedOpportunityRepo(db *pgxpool.Pool) *SavedOpportunityRepo {
	return &SavedOpportunityRepo{db: db}
}

// WithTx creates a new SavedOpportunityRepo bound to the transaction.
func (r *SavedOpportunityRepo) WithTx(tx pgx.Tx) storage.SavedOpportunityRepository {
	return &SavedOpportunityRepo{db: tx}
}

var _ storage.SavedOpportunityRepository = (*SavedOpportunityRepo)(nil)

// Save bookmarks an opportunity for a candidate.
func (r *SavedOpportunityRepo) Save(ctx context.Context, candidateID, opportunityID uuid.UUID) (*models.SavedOpportunity, error) {
	query := `
		INSERT INTO saved_opportunities (id, candidate_id, opportunity_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, candidate_id, opportunity_id, created_at
	`

	row := r.db.QueryRow(ctx, query, uuid.New(), candidateID, opportunityID)

	var saved models.SavedOpportunity
	err := row.Scan(&saved.ID, &saved.CandidateID, &saved.OpportunityID, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "saved_opportunities_candidate_id_opportunity_id_key") {
			log.Printf("Opportunity %s already saved by candidate %s\n", opportunityID, candidateID)
			return nil, storage.ErrDuplicateSave
		}
		log.Printf("Error saving opportunity %s for candidate %s: %v\n", opportunityID, candidateID, err)
		return nil, fmt.Errorf("failed to save opportunity: %w", err)
	}

	return &saved, nil
}

// Unsave removes a bookmark.
func (r *SavedOpportunityRepo) Unsave(ctx context.Context, candidateID, opportunityID uuid.UUID) error {
	query := `DELETE FROM saved_opportunities WHERE candidate_id = $1 AND opportunity_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, candidateID, opportunityID)
	if err != nil {
		log.Printf("Error unsaving opportunity %s for candidate %s: %v\n", opportunityID, candidateID, err)
		return fmt.Errorf("failed to unsave opportunity: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// ListByCandidate retrieves a candidate's bookmarks, newest first.
func (r *SavedOpportunityRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]models.SavedOpportunity, error) {
	query := `
		SELECT id, candidate_id, opportunity_id, created_at
		FROM saved_opportunities
		WHERE candidate_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, candidateID, limit, offset)
	if err != nil {
		log.Printf("Error querying saved opportunities for candidate %s: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to query saved opportunities: %w", err)
	}
	defer rows.Close()

	saved, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SavedOpportunity])
	if err != nil {
		log.Printf("Error scanning saved opportunities for candidate %s: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to scan saved opportunities: %w", err)
	}

	if saved == nil {
		saved = []models.SavedOpportunity{}
	}

	return saved, nil
}

// SavedSet reports which of the given opportunity IDs the candidate has
// bookmarked. Used to mark listing pages in one query.
func (r *SavedOpportunityRepo) SavedSet(ctx context.Context, candidateID uuid.UUID, opportunityIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(opportunityIDs))
	if len(opportunityIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT opportunity_id
		FROM saved_opportunities
		WHERE candidate_id = $1 AND opportunity_id = ANY($2)
	`

	rows, err := r.db.Query(ctx, query, candidateID, opportunityIDs)
	if err != nil {
		log.Printf("Error querying saved set for candidate %s: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to query saved set: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			log.Printf("Error scanning saved set for candidate %s: %v\n", candidateID, err)
			return nil, fmt.Errorf("failed to scan saved set: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read saved set: %w", err)
	}

	return result, nil
}
