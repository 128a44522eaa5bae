// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionScore is the audit result for one CV section. Issues and
// Improvements are kept in lockstep: Improvements[i] addresses Issues[i].
type SectionScore struct {
	Score        int      `json:"score"`
	MaxScore     int      `json:"maxScore"`
	Issues       []string `json:"issues,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	Priority     string   `json:"priority"`
}

// ATSSystemScore is the simulated parse result for one named ATS product.
type ATSSystemScore struct {
	System string   `json:"system"`
	Score  int      `json:"score"`
	Issues []string `json:"issues,omitempty"`
}

// DetailedATSScore is the full section-by-section ATS audit of a CV.
type DetailedATSScore struct {
	Overall            int                     `json:"overall"`
	Industry           string                  `json:"industry"`
	Sections           map[string]SectionScore `json:"sections"`
	IndustryCompliance int                     `json:"industryCompliance"`
	SystemScores       []ATSSystemScore        `json:"systemScores"`
}
