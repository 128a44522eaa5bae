package ranking

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/careza/matchengine/internal/ats"
	"github.com/careza/matchengine/internal/gaps"
	"github.com/careza/matchengine/internal/industry"
	"github.com/careza/matchengine/internal/recommendations"
	"github.com/careza/matchengine/internal/skills"
	"github.com/careza/matchengine/internal/types"
)

// Engine scores CVs against postings using a validated industry registry.
// Stateless apart from the registry and the clock; safe for concurrent use.
type Engine struct {
	registry *industry.Registry
	now      func() time.Time
}

// NewEngine wraps a loaded industry registry.
func NewEngine(registry *industry.Registry) *Engine {
	return &Engine{registry: registry, now: time.Now}
}

// AnalyzeJobMatch scores one CV against one posting across all dimensions
// and assembles the full match result. The posting must carry a title;
// everything else degrades to penalties, never errors.
func (e *Engine) AnalyzeJobMatch(cv *types.CVProfile, job *types.JobPosting) (*types.MatchResult, error) {
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid posting: %w", err)
	}

	industryName := job.Industry
	if !e.registry.Known(industryName) {
		industryName = e.registry.Classify(cv.FullText())
	}
	rules := e.registry.Rules(industryName)

	keywords := skills.TopJobKeywords(job.FullText(), skills.DefaultJobKeywordLimit)
	matches := skills.MatchKeywords(keywords, skills.CandidateTerms(cv))

	now := e.now()
	skillsScore := ScoreSkills(matches)
	experienceScore := ScoreExperience(cv, job, now)
	locationScore := ScoreLocation(cv, job)
	salaryScore := ScoreSalary(cv, job)
	atsScore := ats.Audit(cv, rules).Overall

	w := rules.Weights
	overall := int(math.Round(
		w.Skills*float64(skillsScore) +
			w.Experience*float64(experienceScore) +
			w.ATS*float64(atsScore) +
			w.Location*float64(locationScore)))

	gapList := gaps.Analyze(matches)

	result := &types.MatchResult{
		OverallScore:                overall,
		SkillsMatch:                 skillsScore,
		ExperienceMatch:             experienceScore,
		LocationMatch:               locationScore,
		SalaryMatch:                 salaryScore,
		ATSCompatibility:            atsScore,
		MatchReasons:                matchReasons(matches, experienceScore, locationScore, salaryScore, job),
		ImprovementSuggestions:      recommendations.Generate(overall, matches, gapList),
		PredictedApplicationSuccess: predictSuccess(overall, job, now),
	}
	return result, nil
}

// AnalyzeGaps exposes the skills-gap report for one CV/posting pair.
func (e *Engine) AnalyzeGaps(cv *types.CVProfile, job *types.JobPosting) []types.SkillGap {
	keywords := skills.TopJobKeywords(job.FullText(), skills.DefaultJobKeywordLimit)
	return gaps.Analyze(skills.MatchKeywords(keywords, skills.CandidateTerms(cv)))
}

// AuditCV runs the ATS audit under an explicit industry, or the classified
// one when none is supplied.
func (e *Engine) AuditCV(cv *types.CVProfile, industryName string) *types.DetailedATSScore {
	if !e.registry.Known(industryName) {
		industryName = e.registry.Classify(cv.FullText())
	}
	return ats.Audit(cv, e.registry.Rules(industryName))
}

// matchReasons assembles the human-readable explanation lines in a fixed
// order: skills coverage, experience, location, salary, posting flags.
func matchReasons(matches []skills.KeywordMatch, experienceScore, locationScore, salaryScore int, job *types.JobPosting) []string {
	var reasons []string

	if len(matches) > 0 {
		matched := 0
		for _, m := range matches {
			if m.Matched {
				matched++
			}
		}
		reasons = append(reasons, fmt.Sprintf("Your profile covers %d of the %d keywords this posting asks for.",
			matched, len(matches)))
	}

	switch {
	case experienceScore >= 100:
		reasons = append(reasons, "Your experience meets the posting's requirement.")
	case experienceScore >= 60:
		reasons = append(reasons, "Your experience is close to the posting's requirement.")
	default:
		reasons = append(reasons, "The posting asks for more experience than your CV shows.")
	}

	switch locationScore {
	case locationCityScore:
		reasons = append(reasons, "You are in the same city as this job.")
	case locationProvinceScore:
		reasons = append(reasons, "You are in the same province as this job.")
	case locationRemoteScore:
		reasons = append(reasons, "This posting allows remote work.")
	}

	if salaryScore == 100 {
		reasons = append(reasons, "Your salary expectation fits the advertised range.")
	}

	if job.BEERequired {
		reasons = append(reasons, "This is an employment equity position.")
	}
	if len(job.LanguageRequirements) > 0 {
		reasons = append(reasons, "Language requirements: "+strings.Join(job.LanguageRequirements, ", ")+".")
	}

	return reasons
}

// Prediction adjustments. Fresh postings have smaller applicant pools; famous
// employers have larger ones.
const (
	predictionBase      = 0.8
	freshPostingBonus   = 10
	freshPostingDays    = 3
	stalePostingPenalty = 15
	stalePostingDays    = 14
	prestigeOrgPenalty  = 10
	minPredictedSuccess = 5
	maxPredictedSuccess = 95
)

// prestigeEmployers attract far more applicants per posting, which lowers
// any individual application's odds.
var prestigeEmployers = []string{
	"google", "microsoft", "amazon", "meta", "apple",
	"discovery", "standard bank", "fnb", "absa", "nedbank", "investec",
	"capitec", "vodacom", "mtn", "naspers", "takealot",
	"deloitte", "pwc", "kpmg", "mckinsey",
}

// predictSuccess estimates application success odds from the overall score,
// posting freshness and employer competitiveness, clamped to [5, 95].
// Postings without a date get no freshness adjustment.
func predictSuccess(overall int, job *types.JobPosting, now time.Time) int {
	predicted := float64(overall) * predictionBase

	if !job.PostedDate.IsZero() {
		age := now.Sub(job.PostedDate)
		switch {
		case age < freshPostingDays*24*time.Hour:
			predicted += freshPostingBonus
		case age > stalePostingDays*24*time.Hour:
			predicted -= stalePostingPenalty
		}
	}

	company := strings.ToLower(job.Company)
	for _, org := range prestigeEmployers {
		if strings.Contains(company, org) {
			predicted -= prestigeOrgPenalty
			break
		}
	}

	score := int(math.Round(predicted))
	if score < minPredictedSuccess {
		return minPredictedSuccess
	}
	if score > maxPredictedSuccess {
		return maxPredictedSuccess
	}
	return score
}
