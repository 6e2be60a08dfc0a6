package policy

import (
	"github.com/google/uuid"

	"nextintern-api/internal/models"
)

// Viewer describes who is looking at a listing. An unauthenticated viewer is
// never premium. UserID identifies the viewing account so callers can attach
// per-viewer markers; the policy rules themselves never read it.
type Viewer struct {
	Authenticated bool
	Premium       bool
	UserID        uuid.UUID
}

// OpportunityView is an Opportunity decorated with the disclosure decision
// for one specific viewer. When ShowDetails is false the company block is
// blanked except for the sector and verification flag.
type OpportunityView struct {
	Opportunity models.Opportunity `json:"opportunity"`

	DisplayName string `json:"display_name"`
	ShowDetails bool   `json:"show_details"`
	CanApply    bool   `json:"can_apply"`

	// Saved marks the viewer's bookmark on this listing. Filled by the
	// service layer from the bookmark store, not computed here.
	Saved bool `json:"saved"`

	CompanySector      string `json:"company_sector"`
	CompanyVerified    bool   `json:"company_verified"`
	CompanyDescription string `json:"company_description,omitempty"`
	CompanyCity        string `json:"company_city,omitempty"`
	CompanyState       string `json:"company_state,omitempty"`
	CompanyCountry     string `json:"company_country,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanyContact     string `json:"company_contact,omitempty"`
}

// IsVisible reports whether a viewer is allowed to enumerate an opportunity
// at all. Public browse never enumerates freelancing or premium-only
// listings; authenticated dashboards enumerate everything and rely on
// CanApply to mark eligibility.
func IsVisible(opp *models.Opportunity, viewer Viewer) bool {
	if viewer.Authenticated {
		return true
	}
	if opp.Type == models.OpportunityTypeFreelancing && !viewer.Premium {
		return false
	}
	if opp.IsPremiumOnly && !viewer.Premium {
		return false
	}
	return true
}

// Redact assembles the view of an opportunity for a viewer. Company
// disclosure is independent of type/premium gating: the name and detail
// block follow the company preference and the viewer's tier, CanApply
// follows the premium rules. A nil company degrades to the anonymous
// placeholder rather than failing.
func Redact(opp *models.Opportunity, company *models.Industry, viewer Viewer) OpportunityView {
	view := OpportunityView{
		Opportunity: *opp,
		DisplayName: DisplayName(company, viewer.Premium),
		CanApply:    canApply(opp, viewer),
	}
	if company == nil {
		return view
	}

	view.CompanySector = company.Industry
	view.CompanyVerified = company.IsVerified
	view.ShowDetails = company.ShowCompanyName || viewer.Premium
	if view.ShowDetails {
		view.CompanyDescription = company.Description
		view.CompanyCity = company.City
		view.CompanyState = company.State
		view.CompanyCountry = company.Country
		view.CompanyWebsite = company.Website
		view.CompanyContact = company.ContactEmail
	}
	return view
}

func canApply(opp *models.Opportunity, viewer Viewer) bool {
	if !viewer.Authenticated || !opp.IsActive {
		return false
	}
	if opp.Type == models.OpportunityTypeFreelancing && !viewer.Premium {
		return false
	}
	if opp.IsPremiumOnly && !viewer.Premium {
		return false
	}
	return true
}
