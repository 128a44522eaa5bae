package industry

import "strings"

// classifierTerms are the per-industry signal words counted during
// classification. Kept separate from SpecificRequirements: these detect the
// industry, the requirements audit compliance within it.
var classifierTerms = map[string][]string{
	"technology": {
		"software", "developer", "programming", "engineer", "api", "cloud",
		"database", "devops", "frontend", "backend", "javascript", "python",
		"java", "agile", "scrum", "git",
	},
	"finance": {
		"finance", "financial", "banking", "accounting", "audit", "tax",
		"investment", "insurance", "actuarial", "reconciliation", "treasury",
		"bookkeeping", "creditors", "debtors",
	},
	"healthcare": {
		"healthcare", "medical", "clinical", "patient", "nursing", "hospital",
		"pharmaceutical", "hpcsa", "sanc", "physiotherapy", "radiography",
	},
	"retail": {
		"retail", "merchandising", "stock", "cashier", "point of sale",
		"store", "fmcg", "sales assistant", "customer service", "inventory",
	},
	"mining": {
		"mining", "mine", "geology", "metallurgy", "drilling", "blasting",
		"mhsa", "shaft", "underground", "opencast", "beneficiation",
	},
	"education": {
		"teaching", "teacher", "education", "curriculum", "classroom",
		"learner", "sace", "lecturer", "tutoring", "assessment", "caps",
	},
}

// Classify picks the industry whose signal terms occur most often in the
// text. Ties go to the earlier industry in canonical order; zero hits fall
// back to the default industry.
func (r *Registry) Classify(text string) string {
	lower := strings.ToLower(text)

	best := Default
	bestCount := 0
	for _, name := range r.order {
		count := 0
		for _, term := range classifierTerms[name] {
			count += strings.Count(lower, term)
		}
		if count > bestCount {
			best = name
			bestCount = count
		}
	}
	return best
}

// normalizeName canonicalizes caller-supplied industry names.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
