// Package recommendations turns match scores and skill gaps into a short,
// deterministically ordered list of improvement suggestions.
package recommendations

import (
	"fmt"
	"strings"

	"github.com/careza/matchengine/internal/skills"
	"github.com/careza/matchengine/internal/types"
)

// Score tiers for the closing recommendation.
const (
	applyThreshold    = 70
	transferThreshold = 50
)

const (
	maxTechnicalSuggestions = 3
	maxGapSuggestions       = 2
)

// Generate builds improvement suggestions in a fixed order: low-score
// caution, missing technical skills, high-priority gaps, then a closing line
// tiered by the overall score. Same inputs always yield the same list.
func Generate(overall int, matches []skills.KeywordMatch, gapList []types.SkillGap) []string {
	var out []string

	if overall < transferThreshold {
		out = append(out, "This role is a stretch with your current profile; consider it a growth target rather than a quick win.")
	}

	if missing := missingTechnical(matches, maxTechnicalSuggestions); len(missing) > 0 {
		out = append(out, fmt.Sprintf("Focus on learning %s to close the biggest technical gaps.",
			strings.Join(missing, ", ")))
	}

	if high := highPriorityGaps(gapList, maxGapSuggestions); len(high) > 0 {
		out = append(out, fmt.Sprintf("Address your highest-priority skill gaps first: %s.",
			strings.Join(high, ", ")))
	}

	switch {
	case overall >= applyThreshold:
		out = append(out, "Strong match. Tailor your CV to this posting and apply.")
	case overall >= transferThreshold:
		out = append(out, "Moderate match. Emphasize your transferable skills in the summary and cover letter.")
	default:
		out = append(out, "Build more directly relevant experience before applying, for example through projects or certifications.")
	}

	return out
}

// missingTechnical returns up to limit unmatched technical keywords in the
// incoming (frequency) order.
func missingTechnical(matches []skills.KeywordMatch, limit int) []string {
	var out []string
	for _, m := range matches {
		if m.Matched || m.Category != types.CategoryTechnical {
			continue
		}
		out = append(out, m.Keyword)
		if len(out) == limit {
			break
		}
	}
	return out
}

// highPriorityGaps returns up to limit high-priority gap skills in gap order.
func highPriorityGaps(gapList []types.SkillGap, limit int) []string {
	var out []string
	for _, g := range gapList {
		if g.Priority != types.PriorityHigh {
			continue
		}
		out = append(out, g.Skill)
		if len(out) == limit {
			break
		}
	}
	return out
}
