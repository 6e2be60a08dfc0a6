package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
)

func TestIsTerminalStatus(t *testing.T) {
	assert.False(t, policy.IsTerminalStatus(models.ApplicationStatusPending))
	assert.False(t, policy.IsTerminalStatus(models.ApplicationStatusReviewed))
	assert.False(t, policy.IsTerminalStatus(models.ApplicationStatusShortlisted))
	assert.False(t, policy.IsTerminalStatus(models.ApplicationStatusInterviewScheduled))
	assert.True(t, policy.IsTerminalStatus(models.ApplicationStatusSelected))
	assert.True(t, policy.IsTerminalStatus(models.ApplicationStatusRejected))
	assert.True(t, policy.IsTerminalStatus(models.ApplicationStatusWithdrawn))
}

func TestCanTransition_ReviewPath(t *testing.T) {
	assert.True(t, policy.CanTransition(models.ApplicationStatusPending, models.ApplicationStatusReviewed))
	assert.True(t, policy.CanTransition(models.ApplicationStatusReviewed, models.ApplicationStatusShortlisted))
	assert.True(t, policy.CanTransition(models.ApplicationStatusReviewed, models.ApplicationStatusRejected))
	assert.True(t, policy.CanTransition(models.ApplicationStatusShortlisted, models.ApplicationStatusInterviewScheduled))
	assert.True(t, policy.CanTransition(models.ApplicationStatusShortlisted, models.ApplicationStatusRejected))
	assert.True(t, policy.CanTransition(models.ApplicationStatusInterviewScheduled, models.ApplicationStatusSelected))
	assert.True(t, policy.CanTransition(models.ApplicationStatusInterviewScheduled, models.ApplicationStatusRejected))
}

func TestCanTransition_IllegalJumps(t *testing.T) {
	// Review cannot be skipped.
	assert.False(t, policy.CanTransition(models.ApplicationStatusPending, models.ApplicationStatusShortlisted))
	assert.False(t, policy.CanTransition(models.ApplicationStatusPending, models.ApplicationStatusSelected))
	// Selection requires an interview first.
	assert.False(t, policy.CanTransition(models.ApplicationStatusReviewed, models.ApplicationStatusSelected))
	// No transitions back.
	assert.False(t, policy.CanTransition(models.ApplicationStatusReviewed, models.ApplicationStatusPending))
	assert.False(t, policy.CanTransition(models.ApplicationStatusShortlisted, models.ApplicationStatusReviewed))
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []models.ApplicationStatus{
		models.ApplicationStatusSelected,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	} {
		assert.False(t, policy.CanTransition(terminal, models.ApplicationStatusReviewed), "from %s", terminal)
		assert.False(t, policy.CanTransition(terminal, models.ApplicationStatusWithdrawn), "from %s", terminal)
	}
}

func TestCanTransition_WithdrawalFromAnyNonTerminalState(t *testing.T) {
	for _, from := range []models.ApplicationStatus{
		models.ApplicationStatusPending,
		models.ApplicationStatusReviewed,
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusInterviewScheduled,
	} {
		assert.True(t, policy.CanTransition(from, models.ApplicationStatusWithdrawn), "from %s", from)
	}
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, policy.BucketPending, policy.BucketFor(models.ApplicationStatusPending))
	assert.Equal(t, policy.BucketPending, policy.BucketFor(models.ApplicationStatusReviewed))
	assert.Equal(t, policy.BucketInProgress, policy.BucketFor(models.ApplicationStatusShortlisted))
	assert.Equal(t, policy.BucketInProgress, policy.BucketFor(models.ApplicationStatusInterviewScheduled))
	assert.Equal(t, policy.BucketSelected, policy.BucketFor(models.ApplicationStatusSelected))
	assert.Equal(t, policy.BucketClosed, policy.BucketFor(models.ApplicationStatusRejected))
	assert.Equal(t, policy.BucketClosed, policy.BucketFor(models.ApplicationStatusWithdrawn))
}

func TestStatusesInBucket_CoversEveryStatusExactlyOnce(t *testing.T) {
	seen := map[models.ApplicationStatus]int{}
	for _, bucket := range []policy.StatusBucket{
		policy.BucketPending, policy.BucketInProgress, policy.BucketSelected, policy.BucketClosed,
	} {
		for _, status := range policy.StatusesInBucket(bucket) {
			seen[status]++
			assert.Equal(t, bucket, policy.BucketFor(status))
		}
	}
	assert.Len(t, seen, 7)
	for status, count := range seen {
		assert.Equal(t, 1, count, "status %s", status)
	}
}
