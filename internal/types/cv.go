// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PersonalInfo holds optional contact details. A nil field means the CV never
// supplied it, which is distinct from an empty string.
type PersonalInfo struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

// ExperienceEntry represents a single work history entry.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry represents a single portfolio project.
type ProjectEntry struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents a single education entry.
type EducationEntry struct {
	Degree         string `json:"degree,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationDate string `json:"graduationDate,omitempty"`
}

// CVProfile is the candidate's structured résumé. Every field is optional:
// missing data lowers scores but never causes a failure.
type CVProfile struct {
	Personal   PersonalInfo      `json:"personal"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`

	// Skills is free text, comma or newline separated. SkillList is the
	// structured alternative; both are honored and merged by AllSkills.
	Skills    string   `json:"skills,omitempty"`
	SkillList []string `json:"skillList,omitempty"`

	// Certifications and Projects feed the industry-specific audit sections;
	// most industries require one or the other, not both.
	Certifications []string       `json:"certifications,omitempty"`
	Projects       []ProjectEntry `json:"projects,omitempty"`

	// ExpectedSalary is the candidate's monthly salary expectation in ZAR.
	// Nil means no expectation was supplied.
	ExpectedSalary *int `json:"expectedSalary,omitempty"`
}

// AllSkills merges the structured skill list with the parsed free-text skills
// field, deduplicated case-insensitively, preserving first-seen order.
func (cv *CVProfile) AllSkills() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}

	for _, s := range cv.SkillList {
		add(s)
	}
	for _, chunk := range strings.FieldsFunc(cv.Skills, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	}) {
		add(chunk)
	}
	return out
}

// FullText concatenates every textual part of the CV into one string for
// keyword extraction and industry classification.
func (cv *CVProfile) FullText() string {
	var sb strings.Builder
	appendPart := func(s string) {
		if s != "" {
			sb.WriteString(s)
			sb.WriteString(" ")
		}
	}

	if cv.Personal.Title != nil {
		appendPart(*cv.Personal.Title)
	}
	appendPart(cv.Summary)
	for _, exp := range cv.Experience {
		appendPart(exp.Title)
		appendPart(exp.Company)
		appendPart(exp.Description)
	}
	for _, edu := range cv.Education {
		appendPart(edu.Degree)
		appendPart(edu.Institution)
	}
	appendPart(cv.Skills)
	appendPart(strings.Join(cv.SkillList, " "))
	appendPart(strings.Join(cv.Certifications, " "))
	for _, p := range cv.Projects {
		appendPart(p.Name)
		appendPart(p.Description)
	}

	return strings.TrimSpace(sb.String())
}
