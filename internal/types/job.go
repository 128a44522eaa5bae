// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// JobPosting is a single job advertisement supplied by the caller. Title is
// the only mandatory structural field; everything else degrades gracefully.
type JobPosting struct {
	Title          string   `json:"title" validate:"required,min=1"`
	Company        string   `json:"company,omitempty"`
	Location       string   `json:"location,omitempty"`
	Province       string   `json:"province,omitempty"`
	Salary         string   `json:"salary,omitempty"` // e.g. "R25000 - R40000", ZAR
	EmploymentType string   `json:"employmentType,omitempty"`
	Description    string   `json:"description,omitempty"`
	Requirements   []string `json:"requirements,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	RequiredYears  int      `json:"requiredExperienceYears,omitempty"`

	PostedDate time.Time `json:"postedDate,omitempty"`
	ATSScore   int       `json:"atsScore,omitempty"`

	// South African posting flags carried through for callers; the engine
	// surfaces them in match reasons but does not score on them.
	BEERequired          bool     `json:"beeRequired,omitempty"`
	LanguageRequirements []string `json:"languageRequirements,omitempty"`
}

// Validate enforces the structural contract of a posting. A posting without a
// title is a programming error at the boundary, not a scoring penalty.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// FullText concatenates the searchable text of the posting: title,
// description, requirements and explicit keywords.
func (j *JobPosting) FullText() string {
	parts := make([]string, 0, 3+len(j.Requirements)+len(j.Keywords))
	parts = append(parts, j.Title, j.Description)
	parts = append(parts, j.Requirements...)
	parts = append(parts, j.Keywords...)
	return strings.TrimSpace(strings.Join(parts, " "))
}
