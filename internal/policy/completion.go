package policy

import (
	"math"

	"nextintern-api/internal/models"
)

const (
	completionTotalPoints  = 20
	completionSkillsPoints = 3
	completionMinSkills    = 3
	completionThreshold    = 80
)

// CompletionResult is the weighted profile-completion score. Percentage is
// always in [0,100]; IsComplete gates full dashboard access.
type CompletionResult struct {
	Percentage int  `json:"percentage"`
	IsComplete bool `json:"is_complete"`
}

// Completion scores a candidate profile out of 20 weighted points:
// 5 basic-info fields, 3 location fields, 5 academic fields and 4
// professional links at one point each, plus 3 flat points once the profile
// lists at least three skills (no partial credit). Recomputed on every read,
// never stored.
func Completion(c *models.Candidate, skills []models.CandidateSkill) CompletionResult {
	score := 0
	filled := []bool{
		// basic info
		c.FirstName != "",
		c.LastName != "",
		c.Phone != "",
		c.DateOfBirth != nil,
		c.Bio != "",
		// location
		c.City != "",
		c.State != "",
		c.Country != "",
		// academics
		c.College != "",
		c.Degree != "",
		c.FieldOfStudy != "",
		c.GraduationYear != nil,
		c.CGPA != nil,
		// professional links
		c.ResumeURL != "",
		c.PortfolioURL != "",
		c.LinkedinURL != "",
		c.GithubURL != "",
	}
	for _, ok := range filled {
		if ok {
			score++
		}
	}
	if len(skills) >= completionMinSkills {
		score += completionSkillsPoints
	}

	percentage := int(math.Round(100 * float64(score) / completionTotalPoints))
	return CompletionResult{
		Percentage: percentage,
		IsComplete: percentage >= completionThreshold,
	}
}
