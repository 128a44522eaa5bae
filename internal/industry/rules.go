// Package industry provides the per-industry configuration tables: keyword
// dictionaries for classification and the IndustryRules registry with
// dimension weight vectors, validated once at load time.
package industry

import (
	"fmt"

	"github.com/careza/matchengine/internal/types"
)

// Default is the fallback industry when classification finds nothing and the
// caller supplies none.
const Default = "technology"

// canonicalOrder fixes the declaration order of industries; classification
// ties are broken by this order.
var canonicalOrder = []string{
	"technology",
	"finance",
	"healthcare",
	"retail",
	"mining",
	"education",
}

// ruleTable is the static per-industry configuration. Extracted to a data
// table rather than embedded in scoring logic so it can be validated in one
// place and swapped without touching the scorers.
var ruleTable = map[string]types.IndustryRules{
	"technology": {
		Industry:         "technology",
		RequiredSections: []string{"personal", "summary", "experience", "education", "skills", "projects"},
		KeywordDensity:   0.03,
		FormatRules:      []string{"standard-headings", "reverse-chronological", "bullet-points", "no-tables"},
		SpecificRequirements: []string{
			"git", "agile", "api",
		},
		Weights: types.DimensionWeights{Skills: 0.45, Experience: 0.25, ATS: 0.20, Location: 0.10},
	},
	"finance": {
		Industry:         "finance",
		RequiredSections: []string{"personal", "summary", "experience", "education", "skills", "certifications"},
		KeywordDensity:   0.025,
		FormatRules:      []string{"standard-headings", "reverse-chronological", "no-graphics"},
		SpecificRequirements: []string{
			"excel", "reconciliation", "reporting",
		},
		Weights: types.DimensionWeights{Skills: 0.35, Experience: 0.30, ATS: 0.20, Location: 0.15},
	},
	"healthcare": {
		Industry:         "healthcare",
		RequiredSections: []string{"personal", "summary", "experience", "education", "skills", "certifications"},
		KeywordDensity:   0.02,
		FormatRules:      []string{"standard-headings", "reverse-chronological"},
		SpecificRequirements: []string{
			"patient", "hpcsa", "clinical",
		},
		Weights: types.DimensionWeights{Skills: 0.30, Experience: 0.35, ATS: 0.20, Location: 0.15},
	},
	"retail": {
		Industry:         "retail",
		RequiredSections: []string{"personal", "summary", "experience", "education", "skills"},
		KeywordDensity:   0.02,
		FormatRules:      []string{"standard-headings", "bullet-points"},
		SpecificRequirements: []string{
			"customer", "stock", "sales",
		},
		Weights: types.DimensionWeights{Skills: 0.30, Experience: 0.25, ATS: 0.20, Location: 0.25},
	},
	"mining": {
		Industry:         "mining",
		RequiredSections: []string{"personal", "summary", "experience", "education", "skills", "certifications"},
		KeywordDensity:   0.02,
		FormatRules:      []string{"standard-headings", "reverse-chronological"},
		SpecificRequirements: []string{
			"safety", "mhsa", "operations",
		},
		Weights: types.DimensionWeights{Skills: 0.30, Experience: 0.35, ATS: 0.15, Location: 0.20},
	},
	"education": {
		Industry:         "education",
		RequiredSections: []string{"personal", "summary", "experience", "education", "skills", "certifications"},
		KeywordDensity:   0.02,
		FormatRules:      []string{"standard-headings", "reverse-chronological"},
		SpecificRequirements: []string{
			"curriculum", "sace", "assessment",
		},
		Weights: types.DimensionWeights{Skills: 0.35, Experience: 0.30, ATS: 0.20, Location: 0.15},
	},
}

// Registry is the validated, immutable industry configuration.
type Registry struct {
	rules map[string]types.IndustryRules
	order []string
}

// Load validates every rule entry (weight vectors must sum to 1.0) and
// returns the registry. Call once at startup; scoring never re-validates.
func Load() (*Registry, error) {
	for _, name := range canonicalOrder {
		rules, ok := ruleTable[name]
		if !ok {
			return nil, fmt.Errorf("industry %q declared in canonical order but has no rules", name)
		}
		if err := rules.Validate(); err != nil {
			return nil, err
		}
	}
	if len(ruleTable) != len(canonicalOrder) {
		return nil, fmt.Errorf("rule table has %d industries, canonical order has %d", len(ruleTable), len(canonicalOrder))
	}
	return &Registry{rules: ruleTable, order: canonicalOrder}, nil
}

// Rules returns the rules for an industry, falling back to the default
// industry for unknown or empty names.
func (r *Registry) Rules(name string) types.IndustryRules {
	if rules, ok := r.rules[normalizeName(name)]; ok {
		return rules
	}
	return r.rules[Default]
}

// Known reports whether the industry name is registered.
func (r *Registry) Known(name string) bool {
	_, ok := r.rules[normalizeName(name)]
	return ok
}

// Industries returns the canonical industry ordering.
func (r *Registry) Industries() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
