// Package matchengine scores candidate CVs against job postings: keyword and
// synonym matching, experience, location and salary fit, ATS section audits,
// skills-gap analysis and ranked batch matching. All scoring is deterministic
// and in-memory; the engine holds no state between calls.
package matchengine

import (
	"context"

	"github.com/careza/matchengine/internal/industry"
	"github.com/careza/matchengine/internal/ranking"
	"github.com/careza/matchengine/internal/types"
)

// Domain records re-exported for callers.
type (
	CVProfile        = types.CVProfile
	PersonalInfo     = types.PersonalInfo
	ExperienceEntry  = types.ExperienceEntry
	EducationEntry   = types.EducationEntry
	ProjectEntry     = types.ProjectEntry
	JobPosting       = types.JobPosting
	MatchResult      = types.MatchResult
	JobMatch         = types.JobMatch
	MatchPreferences = types.MatchPreferences
	SkillGap         = types.SkillGap
	SectionScore     = types.SectionScore
	ATSSystemScore   = types.ATSSystemScore
	DetailedATSScore = types.DetailedATSScore
)

// MaxMatches is the cap on ranked results from FindMatches.
const MaxMatches = ranking.MaxMatches

// Engine is the public scoring surface. Safe for concurrent use.
type Engine struct {
	inner *ranking.Engine
}

// New builds an engine with the validated industry configuration.
func New() (*Engine, error) {
	registry, err := industry.Load()
	if err != nil {
		return nil, err
	}
	return &Engine{inner: ranking.NewEngine(registry)}, nil
}

// AnalyzeJobMatch scores one CV against one posting. The posting needs a
// title; all other fields degrade to penalties rather than errors.
func (e *Engine) AnalyzeJobMatch(cv *CVProfile, job *JobPosting) (*MatchResult, error) {
	return e.inner.AnalyzeJobMatch(cv, job)
}

// FindMatches filters postings by the preferences, scores the survivors
// concurrently, and returns at most MaxMatches results ranked by overall
// score plus predicted application success. Prefs may be nil.
func (e *Engine) FindMatches(ctx context.Context, cv *CVProfile, postings []JobPosting, prefs *MatchPreferences) ([]JobMatch, error) {
	return e.inner.FindMatches(ctx, cv, postings, prefs)
}

// AnalyzeCV audits the CV's ATS readiness under the named industry. An empty
// or unknown industry is classified from the CV text.
func (e *Engine) AnalyzeCV(cv *CVProfile, industryName string) *DetailedATSScore {
	return e.inner.AuditCV(cv, industryName)
}

// AnalyzeSkillGaps reports the posting keywords the CV does not cover, most
// demanded first.
func (e *Engine) AnalyzeSkillGaps(cv *CVProfile, job *JobPosting) []SkillGap {
	return e.inner.AnalyzeGaps(cv, job)
}
