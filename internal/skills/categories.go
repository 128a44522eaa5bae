package skills

import (
	"strings"

	"github.com/careza/matchengine/internal/types"
)

// Display weights per keyword category. Used for qualitative grouping in
// match output, not as an input to the skills score.
const (
	weightTechnical = 1.5
	weightIndustry  = 1.3
	weightSoft      = 1.2
	weightGeneral   = 1.0
)

// technicalTerms flag a keyword as a hands-on technical skill.
var technicalTerms = []string{
	"programming", "software", "developer", "engineering", "code",
	"python", "java", "javascript", "typescript", "golang", "c++", "c#",
	"php", "ruby", "sql", "database", "mysql", "postgres", "mongodb",
	"react", "angular", "vue", "node", "django", "spring", "api", "rest",
	"cloud", "aws", "azure", "gcp", "docker", "kubernetes", "linux",
	"devops", "git", "terraform", "automation", "testing", "security",
	"network", "data", "analytics", "excel", "tableau", "powerbi",
}

// industryTerms flag a keyword as sector-specific domain knowledge.
var industryTerms = []string{
	"banking", "finance", "financial", "insurance", "accounting", "audit",
	"mining", "retail", "healthcare", "medical", "pharmaceutical", "legal",
	"compliance", "logistics", "manufacturing", "construction", "telecom",
	"education", "hospitality", "agriculture", "fmcg", "actuarial",
}

// softTerms flag a keyword as an interpersonal or organizational skill.
var softTerms = []string{
	"communication", "leadership", "teamwork", "management", "planning",
	"organisation", "organization", "presentation", "negotiation",
	"mentoring", "collaboration", "analytical", "problem-solving",
	"stakeholder", "interpersonal", "adaptability", "initiative",
}

// Categorize assigns a keyword to technical, industry, soft or general by
// substring membership in the category term sets, checked in that order.
func Categorize(keyword string) string {
	kw := strings.ToLower(keyword)
	if containsAny(kw, technicalTerms) {
		return types.CategoryTechnical
	}
	if containsAny(kw, industryTerms) {
		return types.CategoryIndustry
	}
	if containsAny(kw, softTerms) {
		return types.CategorySoft
	}
	return types.CategoryGeneral
}

// CategoryWeight returns the display weight for a category.
func CategoryWeight(category string) float64 {
	switch category {
	case types.CategoryTechnical:
		return weightTechnical
	case types.CategoryIndustry:
		return weightIndustry
	case types.CategorySoft:
		return weightSoft
	default:
		return weightGeneral
	}
}

// containsAny reports whether the keyword contains, or is contained in, any
// of the category terms.
func containsAny(keyword string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(keyword, term) || strings.Contains(term, keyword) {
			return true
		}
	}
	return false
}
