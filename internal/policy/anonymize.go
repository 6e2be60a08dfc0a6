// Package policy holds the visibility, eligibility and scoring rules that
// govern what a viewer may see and do with an opportunity. Every function is
// pure: no I/O, no clock reads, no logging. Callers load the rows, policy
// decides.
package policy

import "nextintern-api/internal/models"

const (
	// Canonical suffix length for redacted company names.
	anonymousSuffixLen = 3

	// Placeholder used when a company row is missing its anonymous ID.
	fallbackDisplayName = "Company #000"
)

// DisplayName derives the company name shown to a viewer. The real name is
// returned when the company opted into disclosure or the viewer is premium;
// otherwise the name is redacted to "Company #" plus the tail of the
// company's immutable anonymous ID.
func DisplayName(company *models.Industry, viewerIsPremium bool) string {
	if company == nil {
		return fallbackDisplayName
	}
	if company.ShowCompanyName || viewerIsPremium {
		return company.CompanyName
	}
	if company.AnonymousID == "" {
		return fallbackDisplayName
	}
	suffix := company.AnonymousID
	if len(suffix) > anonymousSuffixLen {
		suffix = suffix[len(suffix)-anonymousSuffixLen:]
	}
	return "Company #" + suffix
}
