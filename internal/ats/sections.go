// Package ats audits a CV the way an applicant tracking system would parse
// it: per-section rule checks, industry keyword compliance, and simulated
// scores for the ATS products common in each industry.
package ats

import (
	"strings"

	"github.com/careza/matchengine/internal/types"
)

const maxSectionScore = 100

// Section penalties. Each constant is subtracted from a section's starting
// score of 100 when its check fails; sections floor at 0.
const (
	penaltyMissingName     = 30
	penaltyMissingEmail    = 25
	penaltyMissingPhone    = 20
	penaltyMissingLocation = 15

	penaltyNoSummary      = 60
	penaltyShortSummary   = 50
	penaltySummaryNoStats = 25
	minSummaryWords       = 30

	penaltyNoExperience       = 70
	penaltyEntryNoDescription = 20
	maxNoDescriptionPenalty   = 40
	penaltyEntryNoDates       = 10
	maxNoDatesPenalty         = 20

	penaltyNoEducation        = 60
	penaltyMissingDegree      = 15
	penaltyMissingInstitution = 10

	penaltyNoSkills         = 70
	penaltyFewSkills        = 40
	minSkillEntries         = 5
	penaltyFewIndustryTerms = 20
	minIndustryTerms        = 2

	penaltyNoCertifications = 50

	penaltyNoProjects        = 40
	penaltyUnnamedProject    = 15
	maxUnnamedProjectPenalty = 30
)

// sectionAudit accumulates penalties with issue/improvement pairs in
// lockstep.
type sectionAudit struct {
	score        int
	issues       []string
	improvements []string
}

func newSectionAudit() *sectionAudit {
	return &sectionAudit{score: maxSectionScore}
}

func (a *sectionAudit) penalize(points int, issue, improvement string) {
	a.score -= points
	a.issues = append(a.issues, issue)
	a.improvements = append(a.improvements, improvement)
}

// result clamps the score at 0 and assigns a priority from the section's
// thresholds: high below highBelow, medium below mediumBelow, else low.
func (a *sectionAudit) result(highBelow, mediumBelow int) types.SectionScore {
	score := a.score
	if score < 0 {
		score = 0
	}
	priority := types.PriorityLow
	switch {
	case score < highBelow:
		priority = types.PriorityHigh
	case score < mediumBelow:
		priority = types.PriorityMedium
	}
	return types.SectionScore{
		Score:        score,
		MaxScore:     maxSectionScore,
		Issues:       a.issues,
		Improvements: a.improvements,
		Priority:     priority,
	}
}

func auditPersonal(cv *types.CVProfile) types.SectionScore {
	a := newSectionAudit()
	if isBlank(cv.Personal.Name) {
		a.penalize(penaltyMissingName,
			"No name found",
			"Add your full name at the top of the CV")
	}
	if isBlank(cv.Personal.Email) {
		a.penalize(penaltyMissingEmail,
			"No email address found",
			"Add a professional email address")
	}
	if isBlank(cv.Personal.Phone) {
		a.penalize(penaltyMissingPhone,
			"No phone number found",
			"Add a phone number in international format")
	}
	if isBlank(cv.Personal.Location) {
		a.penalize(penaltyMissingLocation,
			"No location found",
			"Add your city and province")
	}
	return a.result(50, 75)
}

func auditSummary(cv *types.CVProfile) types.SectionScore {
	a := newSectionAudit()
	summary := strings.TrimSpace(cv.Summary)
	switch {
	case summary == "":
		a.penalize(penaltyNoSummary,
			"No professional summary",
			"Add a 3-4 sentence summary of your experience and strengths")
	case len(strings.Fields(summary)) < minSummaryWords:
		a.penalize(penaltyShortSummary,
			"Professional summary is too short",
			"Expand the summary to at least 30 words covering role, years and key skills")
	}
	if summary != "" && !strings.ContainsAny(summary, "0123456789") {
		a.penalize(penaltySummaryNoStats,
			"Summary contains no quantified achievements",
			"Add numbers: years of experience, team sizes, results achieved")
	}
	return a.result(50, 75)
}

func auditExperience(cv *types.CVProfile) types.SectionScore {
	a := newSectionAudit()
	if len(cv.Experience) == 0 {
		a.penalize(penaltyNoExperience,
			"No work experience listed",
			"Add your work history, most recent first")
		return a.result(60, 80)
	}

	noDescription := 0
	noDates := 0
	for _, entry := range cv.Experience {
		if strings.TrimSpace(entry.Description) == "" {
			noDescription++
		}
		if strings.TrimSpace(entry.StartDate) == "" && strings.TrimSpace(entry.EndDate) == "" {
			noDates++
		}
	}
	if noDescription > 0 {
		a.penalize(capped(noDescription*penaltyEntryNoDescription, maxNoDescriptionPenalty),
			"Some positions have no description",
			"Describe responsibilities and achievements for every position")
	}
	if noDates > 0 {
		a.penalize(capped(noDates*penaltyEntryNoDates, maxNoDatesPenalty),
			"Some positions have no dates",
			"Add start and end dates to every position")
	}
	return a.result(60, 80)
}

func auditEducation(cv *types.CVProfile) types.SectionScore {
	a := newSectionAudit()
	if len(cv.Education) == 0 {
		a.penalize(penaltyNoEducation,
			"No education listed",
			"Add your qualifications, including institution and year")
		return a.result(50, 75)
	}

	for _, entry := range cv.Education {
		if strings.TrimSpace(entry.Degree) == "" {
			a.penalize(penaltyMissingDegree,
				"An education entry has no qualification name",
				"Name the degree, diploma or certificate for each entry")
			break
		}
	}
	for _, entry := range cv.Education {
		if strings.TrimSpace(entry.Institution) == "" {
			a.penalize(penaltyMissingInstitution,
				"An education entry has no institution",
				"Name the institution for each qualification")
			break
		}
	}
	return a.result(50, 75)
}

func auditSkills(cv *types.CVProfile, rules types.IndustryRules) types.SectionScore {
	a := newSectionAudit()
	allSkills := cv.AllSkills()
	if len(allSkills) == 0 {
		a.penalize(penaltyNoSkills,
			"No skills listed",
			"Add a skills section with your core competencies")
		return a.result(60, 80)
	}

	if len(allSkills) < minSkillEntries {
		a.penalize(penaltyFewSkills,
			"Skills section is very short",
			"List at least five relevant skills")
	}
	if countIndustryTerms(allSkills, rules.SpecificRequirements) < minIndustryTerms {
		a.penalize(penaltyFewIndustryTerms,
			"Few "+rules.Industry+" keywords in skills",
			"Add skills recruiters in "+rules.Industry+" search for")
	}
	return a.result(60, 80)
}

func auditCertifications(cv *types.CVProfile) types.SectionScore {
	a := newSectionAudit()
	if len(cv.Certifications) == 0 {
		a.penalize(penaltyNoCertifications,
			"No certifications listed",
			"Add professional certifications or registrations expected in your field")
	}
	return a.result(50, 80)
}

func auditProjects(cv *types.CVProfile) types.SectionScore {
	a := newSectionAudit()
	if len(cv.Projects) == 0 {
		a.penalize(penaltyNoProjects,
			"No projects listed",
			"Add notable projects with a short description of your role")
		return a.result(50, 75)
	}

	unnamed := 0
	for _, p := range cv.Projects {
		if strings.TrimSpace(p.Name) == "" {
			unnamed++
		}
	}
	if unnamed > 0 {
		a.penalize(capped(unnamed*penaltyUnnamedProject, maxUnnamedProjectPenalty),
			"Some projects have no name",
			"Give every project a clear title")
	}
	return a.result(50, 75)
}

// countIndustryTerms counts skill entries containing any of the industry's
// required terms, case-insensitively.
func countIndustryTerms(skills, terms []string) int {
	count := 0
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				count++
				break
			}
		}
	}
	return count
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func capped(points, limit int) int {
	if points > limit {
		return limit
	}
	return points
}
