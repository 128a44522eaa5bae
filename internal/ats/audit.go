package ats

import (
	"math"
	"strings"

	"github.com/careza/matchengine/internal/types"
)

// Overall score composition.
const (
	sectionMeanWeight = 0.6
	complianceWeight  = 0.2
	systemMeanWeight  = 0.2

	missingTermPenalty = 20
)

// baseSections are audited for every CV regardless of industry.
var baseSections = []string{"personal", "summary", "experience", "education", "skills"}

// Audit runs the full section-by-section ATS analysis of a CV under one
// industry's rules. It never fails: missing data shows up as penalties.
func Audit(cv *types.CVProfile, rules types.IndustryRules) *types.DetailedATSScore {
	sections := make(map[string]types.SectionScore)
	for _, name := range sectionNames(rules) {
		sections[name] = auditSection(name, cv, rules)
	}

	compliance := scoreCompliance(cv, rules)
	systems := scoreSystems(cv, rules.Industry)

	overall := math.Round(
		sectionMeanWeight*meanSectionScore(sections) +
			complianceWeight*float64(compliance) +
			systemMeanWeight*meanSystemScore(systems))

	return &types.DetailedATSScore{
		Overall:            int(overall),
		Industry:           rules.Industry,
		Sections:           sections,
		IndustryCompliance: compliance,
		SystemScores:       systems,
	}
}

// sectionNames is the base section list plus any industry extras, in the
// order the rules declare them.
func sectionNames(rules types.IndustryRules) []string {
	names := make([]string, 0, len(baseSections)+2)
	names = append(names, baseSections...)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range rules.RequiredSections {
		if !seen[n] && hasAuditor(n) {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

func hasAuditor(name string) bool {
	switch name {
	case "personal", "summary", "experience", "education", "skills",
		"certifications", "projects":
		return true
	}
	return false
}

func auditSection(name string, cv *types.CVProfile, rules types.IndustryRules) types.SectionScore {
	switch name {
	case "personal":
		return auditPersonal(cv)
	case "summary":
		return auditSummary(cv)
	case "experience":
		return auditExperience(cv)
	case "education":
		return auditEducation(cv)
	case "skills":
		return auditSkills(cv, rules)
	case "certifications":
		return auditCertifications(cv)
	default:
		return auditProjects(cv)
	}
}

// scoreCompliance checks the CV text for the industry's required terms: 100
// minus 20 per missing term, floored at 0.
func scoreCompliance(cv *types.CVProfile, rules types.IndustryRules) int {
	text := strings.ToLower(cv.FullText())
	missing := 0
	for _, term := range rules.SpecificRequirements {
		if !strings.Contains(text, strings.ToLower(term)) {
			missing++
		}
	}
	score := 100 - missingTermPenalty*missing
	if score < 0 {
		return 0
	}
	return score
}

func meanSectionScore(sections map[string]types.SectionScore) float64 {
	if len(sections) == 0 {
		return 0
	}
	total := 0
	for _, s := range sections {
		total += s.Score
	}
	return float64(total) / float64(len(sections))
}

func meanSystemScore(systems []types.ATSSystemScore) float64 {
	if len(systems) == 0 {
		return 0
	}
	total := 0
	for _, s := range systems {
		total += s.Score
	}
	return float64(total) / float64(len(systems))
}
