// Package ranking scores a CV against job postings: four independent
// dimension scorers, weighted aggregation into a MatchResult, and batch
// matching with preference filters.
package ranking

import (
	"math"
	"time"

	"github.com/careza/matchengine/internal/parsing"
	"github.com/careza/matchengine/internal/skills"
	"github.com/careza/matchengine/internal/types"
)

// Experience ratio tiers. A candidate at 80% of the required years is close
// enough to be worth applying; below 60% the score tracks the raw ratio.
const (
	experienceFullTier = 1.0
	experienceHighTier = 0.8
	experienceMidTier  = 0.6
	experienceFloor    = 20
)

// Salary scoring constants. With no expectation or an unparseable range the
// dimension stays neutral rather than guessing.
const (
	salaryNeutralScore = 50
	salaryAboveFloor   = 60
)

// ScoreSkills converts keyword match results into a 0-100 coverage score.
// A posting with no extractable keywords constrains nothing, so it scores 100.
func ScoreSkills(matches []skills.KeywordMatch) int {
	if len(matches) == 0 {
		return 100
	}
	matched := 0
	for _, m := range matches {
		if m.Matched {
			matched++
		}
	}
	return roundPct(float64(matched) / float64(len(matches)))
}

// ScoreExperience compares the candidate's estimated years against the
// posting's requirement. The explicit RequiredYears field wins; otherwise the
// requirement is extracted from the posting text. No requirement scores 100.
func ScoreExperience(cv *types.CVProfile, job *types.JobPosting, now time.Time) int {
	required := job.RequiredYears
	if required <= 0 {
		if years, ok := parsing.ExtractRequiredYears(job.FullText()); ok {
			required = years
		}
	}
	if required <= 0 {
		return 100
	}

	candidate := parsing.EstimateYears(cv.Experience, now)
	ratio := float64(candidate) / float64(required)
	switch {
	case ratio >= experienceFullTier:
		return 100
	case ratio >= experienceHighTier:
		return 80
	case ratio >= experienceMidTier:
		return 60
	default:
		score := roundPct(ratio)
		if score < experienceFloor {
			return experienceFloor
		}
		return score
	}
}

// ScoreSalary compares the candidate's expected salary against the posting's
// advertised range. Neutral when either side is missing or unparseable.
func ScoreSalary(cv *types.CVProfile, job *types.JobPosting) int {
	if cv.ExpectedSalary == nil || *cv.ExpectedSalary <= 0 {
		return salaryNeutralScore
	}
	rng, ok := parsing.ParseSalaryRange(job.Salary)
	if !ok {
		return salaryNeutralScore
	}

	expected := *cv.ExpectedSalary
	switch {
	case expected >= rng.Min && expected <= rng.Max:
		return 100
	case expected < rng.Min:
		// Candidate undercuts the band; score approaches 100 as the
		// expectation approaches the advertised minimum.
		score := roundRatio(float64(rng.Min), float64(expected))
		if score > 100 {
			return 100
		}
		return score
	default:
		// Candidate wants more than the band tops out at.
		score := roundRatio(float64(rng.Max), float64(expected))
		if score < salaryAboveFloor {
			return salaryAboveFloor
		}
		return score
	}
}

// roundPct converts a 0-1 ratio to a rounded 0-100 integer.
func roundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}

// roundRatio is roundPct over a/b.
func roundRatio(a, b float64) int {
	return int(math.Round(a / b * 100))
}
