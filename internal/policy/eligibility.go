package policy

import (
	"time"

	"github.com/google/uuid"

	"nextintern-api/internal/models"
)

// DenialReason classifies why an application attempt was refused. These are
// policy outcomes, not errors: the caller translates them to HTTP responses.
type DenialReason string

const (
	ReasonOpportunityClosed DenialReason = "OPPORTUNITY_CLOSED"
	ReasonDeadlinePassed    DenialReason = "DEADLINE_PASSED"
	ReasonPremiumRequired   DenialReason = "PREMIUM_REQUIRED"
	ReasonAlreadyApplied    DenialReason = "ALREADY_APPLIED"
)

// EligibilityResult is the outcome of the application gate. For
// AlreadyApplied the existing application's id and status are carried so the
// caller can route to its status view instead of showing an error.
type EligibilityResult struct {
	OK     bool
	Reason DenialReason

	ExistingApplicationID uuid.UUID
	ExistingStatus        models.ApplicationStatus
}

// CheckEligibility decides whether a candidate may apply to an opportunity
// right now. Rules run in order and short-circuit on the first failure:
//
//  1. inactive opportunity            -> OpportunityClosed
//  2. deadline strictly before now    -> DeadlinePassed
//  3. freelancing without premium     -> PremiumRequired
//  4. premium-only without premium    -> PremiumRequired
//  5. a non-withdrawn application     -> AlreadyApplied
//
// The function performs no I/O; existing applications are loaded by the
// caller, which must also re-check rule 5 transactionally (the partial
// unique index on applications) to close the check-then-insert race.
func CheckEligibility(candidateIsPremium bool, opp *models.Opportunity, existing []models.Application, now time.Time) EligibilityResult {
	if !opp.IsActive {
		return EligibilityResult{Reason: ReasonOpportunityClosed}
	}
	if opp.ApplicationDeadline != nil && opp.ApplicationDeadline.Before(now) {
		return EligibilityResult{Reason: ReasonDeadlinePassed}
	}
	if opp.Type == models.OpportunityTypeFreelancing && !candidateIsPremium {
		return EligibilityResult{Reason: ReasonPremiumRequired}
	}
	if opp.IsPremiumOnly && !candidateIsPremium {
		return EligibilityResult{Reason: ReasonPremiumRequired}
	}
	for i := range existing {
		if existing[i].Status != models.ApplicationStatusWithdrawn {
			return EligibilityResult{
				Reason:                ReasonAlreadyApplied,
				ExistingApplicationID: existing[i].ID,
				ExistingStatus:        existing[i].Status,
			}
		}
	}
	return EligibilityResult{OK: true}
}
