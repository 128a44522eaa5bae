package ats

import (
	"strings"

	"github.com/careza/matchengine/internal/types"
)

// Simulated ATS product scoring: every system starts at 75 and loses 15 per
// triggered check, floored at 40. The simulation is deliberately coarse; it
// flags structural problems real parsers choke on, not vendor quirks.
const (
	baseSystemScore    = 75
	systemCheckPenalty = 15
	minSystemScore     = 40
)

type systemCheck struct {
	issue  string
	failed func(cv *types.CVProfile) bool
}

type atsSystem struct {
	name   string
	checks []systemCheck
}

// Shared checks reused across the catalog.
var (
	checkContact = systemCheck{
		issue: "Incomplete contact details confuse automated parsing",
		failed: func(cv *types.CVProfile) bool {
			return isBlank(cv.Personal.Email) || isBlank(cv.Personal.Phone)
		},
	}
	checkSummary = systemCheck{
		issue: "Missing professional summary weakens keyword indexing",
		failed: func(cv *types.CVProfile) bool {
			return strings.TrimSpace(cv.Summary) == ""
		},
	}
	checkDates = systemCheck{
		issue: "Undated positions break chronological parsing",
		failed: func(cv *types.CVProfile) bool {
			for _, e := range cv.Experience {
				if strings.TrimSpace(e.StartDate) == "" && strings.TrimSpace(e.EndDate) == "" {
					return true
				}
			}
			return len(cv.Experience) == 0
		},
	}
	checkSkills = systemCheck{
		issue: "Sparse skills section yields few searchable keywords",
		failed: func(cv *types.CVProfile) bool {
			return len(cv.AllSkills()) < minSkillEntries
		},
	}
	checkEducation = systemCheck{
		issue: "Missing education entries fail qualification screens",
		failed: func(cv *types.CVProfile) bool {
			return len(cv.Education) == 0
		},
	}
)

// systemCatalog lists the ATS products commonly screening applications in
// each industry, including the South African job boards PNet and
// CareerJunction.
var systemCatalog = map[string][]atsSystem{
	"technology": {
		{name: "Greenhouse", checks: []systemCheck{checkContact, checkSkills, checkSummary}},
		{name: "Lever", checks: []systemCheck{checkContact, checkDates, checkSkills}},
		{name: "Workday", checks: []systemCheck{checkContact, checkDates, checkEducation}},
	},
	"finance": {
		{name: "Workday", checks: []systemCheck{checkContact, checkDates, checkEducation}},
		{name: "SAP SuccessFactors", checks: []systemCheck{checkContact, checkEducation, checkSummary}},
		{name: "Oracle Taleo", checks: []systemCheck{checkContact, checkDates, checkSkills}},
	},
	"healthcare": {
		{name: "Oracle Taleo", checks: []systemCheck{checkContact, checkDates, checkSkills}},
		{name: "SAP SuccessFactors", checks: []systemCheck{checkContact, checkEducation, checkSummary}},
		{name: "PNet", checks: []systemCheck{checkContact, checkSummary, checkSkills}},
	},
	"retail": {
		{name: "PNet", checks: []systemCheck{checkContact, checkSummary, checkSkills}},
		{name: "CareerJunction", checks: []systemCheck{checkContact, checkDates, checkSummary}},
		{name: "Workday", checks: []systemCheck{checkContact, checkDates, checkEducation}},
	},
	"mining": {
		{name: "SAP SuccessFactors", checks: []systemCheck{checkContact, checkEducation, checkSummary}},
		{name: "Oracle Taleo", checks: []systemCheck{checkContact, checkDates, checkSkills}},
		{name: "CareerJunction", checks: []systemCheck{checkContact, checkDates, checkSummary}},
	},
	"education": {
		{name: "PNet", checks: []systemCheck{checkContact, checkSummary, checkSkills}},
		{name: "CareerJunction", checks: []systemCheck{checkContact, checkDates, checkSummary}},
		{name: "Oracle Taleo", checks: []systemCheck{checkContact, checkEducation, checkSkills}},
	},
}

// scoreSystems runs the industry's catalog over the CV. Unknown industries
// use the technology catalog, mirroring the registry fallback.
func scoreSystems(cv *types.CVProfile, industry string) []types.ATSSystemScore {
	systems, ok := systemCatalog[industry]
	if !ok {
		systems = systemCatalog["technology"]
	}

	scores := make([]types.ATSSystemScore, 0, len(systems))
	for _, sys := range systems {
		score := baseSystemScore
		var issues []string
		for _, check := range sys.checks {
			if check.failed(cv) {
				score -= systemCheckPenalty
				issues = append(issues, check.issue)
			}
		}
		if score < minSystemScore {
			score = minSystemScore
		}
		scores = append(scores, types.ATSSystemScore{
			System: sys.name,
			Score:  score,
			Issues: issues,
		})
	}
	return scores
}
