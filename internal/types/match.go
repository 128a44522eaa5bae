// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the outcome of scoring one CV against one posting. All
// scores are integers in [0,100]. Results are recomputed fresh on every
// request and never persisted by the engine.
type MatchResult struct {
	OverallScore                int      `json:"overallScore"`
	SkillsMatch                 int      `json:"skillsMatch"`
	ExperienceMatch             int      `json:"experienceMatch"`
	LocationMatch               int      `json:"locationMatch"`
	SalaryMatch                 int      `json:"salaryMatch"`
	ATSCompatibility            int      `json:"atsCompatibility"`
	MatchReasons                []string `json:"matchReasons"`
	ImprovementSuggestions      []string `json:"improvementSuggestions"`
	PredictedApplicationSuccess int      `json:"predictedApplicationSuccess"`
}

// JobMatch pairs a posting with its match result in a ranked batch.
type JobMatch struct {
	Job    JobPosting  `json:"job"`
	Result MatchResult `json:"result"`
}

// MatchPreferences are optional caller-supplied filters applied before
// ranking in FindMatches.
type MatchPreferences struct {
	Provinces []string `json:"provinces,omitempty"`
	JobTypes  []string `json:"jobTypes,omitempty"`
	MinSalary int      `json:"minSalary,omitempty"`
	MaxSalary int      `json:"maxSalary,omitempty"`
}

// SkillGap describes a job keyword the CV does not cover, with learning
// guidance attached.
type SkillGap struct {
	Skill                string   `json:"skill"`
	Category             string   `json:"category"`
	Priority             string   `json:"priority"`
	LearningResources    []string `json:"learningResources"`
	EstimatedTimeToLearn string   `json:"estimatedTimeToLearn"`
}

// Skill categories used for keyword grouping and gap priorities.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryIndustry  = "industry"
	CategoryGeneral   = "general"
)

// Gap and section priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)
