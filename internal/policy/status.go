package policy

import "nextintern-api/internal/models"

// StatusBucket groups application statuses into the four listing filters the
// dashboards use.
type StatusBucket string

const (
	BucketPending    StatusBucket = "pending"
	BucketInProgress StatusBucket = "in_progress"
	BucketSelected   StatusBucket = "selected"
	BucketClosed     StatusBucket = "closed"
)

// IsTerminalStatus reports whether an application can never change status
// again.
func IsTerminalStatus(s models.ApplicationStatus) bool {
	switch s {
	case models.ApplicationStatusSelected, models.ApplicationStatusRejected, models.ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// CanTransition validates a status change against the review state machine:
//
//	PENDING -> REVIEWED -> {SHORTLISTED, REJECTED}
//	SHORTLISTED -> {INTERVIEW_SCHEDULED, REJECTED}
//	INTERVIEW_SCHEDULED -> {SELECTED, REJECTED}
//
// Withdrawal is candidate-initiated and legal from any non-terminal state.
func CanTransition(from, to models.ApplicationStatus) bool {
	if to == models.ApplicationStatusWithdrawn {
		return !IsTerminalStatus(from)
	}
	switch from {
	case models.ApplicationStatusPending:
		return to == models.ApplicationStatusReviewed
	case models.ApplicationStatusReviewed:
		return to == models.ApplicationStatusShortlisted || to == models.ApplicationStatusRejected
	case models.ApplicationStatusShortlisted:
		return to == models.ApplicationStatusInterviewScheduled || to == models.ApplicationStatusRejected
	case models.ApplicationStatusInterviewScheduled:
		return to == models.ApplicationStatusSelected || to == models.ApplicationStatusRejected
	default:
		return false
	}
}

// BucketFor maps a status to its listing bucket.
func BucketFor(s models.ApplicationStatus) StatusBucket {
	switch s {
	case models.ApplicationStatusPending, models.ApplicationStatusReviewed:
		return BucketPending
	case models.ApplicationStatusShortlisted, models.ApplicationStatusInterviewScheduled:
		return BucketInProgress
	case models.ApplicationStatusSelected:
		return BucketSelected
	default:
		return BucketClosed
	}
}

// StatusesInBucket lists the statuses belonging to a bucket, for storage
// filters. Unknown buckets return nil (no filter).
func StatusesInBucket(b StatusBucket) []models.ApplicationStatus {
	switch b {
	case BucketPending:
		return []models.ApplicationStatus{models.ApplicationStatusPending, models.ApplicationStatusReviewed}
	case BucketInProgress:
		return []models.ApplicationStatus{models.ApplicationStatusShortlisted, models.ApplicationStatusInterviewScheduled}
	case BucketSelected:
		return []models.ApplicationStatus{models.ApplicationStatusSelected}
	case BucketClosed:
		return []models.ApplicationStatus{models.ApplicationStatusRejected, models.ApplicationStatusWithdrawn}
	default:
		return nil
	}
}
