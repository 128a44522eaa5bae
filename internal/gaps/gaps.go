// Package gaps turns unmatched job keywords into an actionable skills-gap
// report with learning guidance per gap.
package gaps

import (
	"fmt"
	"strings"

	"github.com/careza/matchengine/internal/skills"
	"github.com/careza/matchengine/internal/types"
)

// MaxGaps caps the report; beyond the ten most frequent missing keywords the
// advice stops being actionable.
const MaxGaps = 10

// Estimated learning time per gap priority.
const (
	timeHighPriority   = "2-4 weeks"
	timeMediumPriority = "1-3 weeks"
	timeLowPriority    = "3-7 days"
)

// learningResources maps lowercase skill keywords to curated starting points.
// Skills without an entry get the generic fallback.
var learningResources = map[string][]string{
	"python":     {"Python.org official tutorial", "Automate the Boring Stuff with Python"},
	"javascript": {"MDN JavaScript Guide", "javascript.info"},
	"typescript": {"TypeScript Handbook", "Execute Program TypeScript course"},
	"java":       {"Oracle Java Tutorials", "Baeldung"},
	"golang":     {"A Tour of Go", "Go by Example"},
	"sql":        {"SQLBolt interactive lessons", "Mode SQL tutorial"},
	"react":      {"react.dev tutorial", "Epic React fundamentals"},
	"angular":    {"Angular official tutorial"},
	"docker":     {"Docker Getting Started guide", "Play with Docker labs"},
	"kubernetes": {"Kubernetes Basics tutorial", "CKAD exercises"},
	"aws":        {"AWS Skill Builder", "AWS Cloud Practitioner Essentials"},
	"azure":      {"Microsoft Learn Azure Fundamentals"},
	"excel":      {"Microsoft Excel help center", "Chandoo.org"},
	"git":        {"Pro Git book", "Learn Git Branching"},
	"terraform":  {"HashiCorp Learn Terraform track"},
	"leadership": {"Coursera leadership specializations"},
	"communication": {
		"Toastmasters local chapters",
		"Coursera business communication courses",
	},
}

// genericResources is the fallback when no curated entry exists.
func genericResources(skill string) []string {
	return []string{
		fmt.Sprintf("Online courses covering %s (Coursera, Udemy)", skill),
		fmt.Sprintf("Entry-level certifications or tutorials for %s", skill),
	}
}

// Analyze converts the missing keywords from a match run into ranked skill
// gaps. Input order is the job-keyword frequency order and is preserved, so
// the most demanded missing skills come first. At most MaxGaps are returned.
func Analyze(matches []skills.KeywordMatch) []types.SkillGap {
	result := make([]types.SkillGap, 0, MaxGaps)
	for _, m := range matches {
		if m.Matched {
			continue
		}
		if len(result) == MaxGaps {
			break
		}
		priority := priorityFor(m.Category)
		result = append(result, types.SkillGap{
			Skill:                m.Keyword,
			Category:             m.Category,
			Priority:             priority,
			LearningResources:    resourcesFor(m.Keyword),
			EstimatedTimeToLearn: timeFor(priority),
		})
	}
	return result
}

// priorityFor maps keyword categories to gap priorities. Technical and
// industry gaps block screening the hardest.
func priorityFor(category string) string {
	switch category {
	case types.CategoryTechnical, types.CategoryIndustry:
		return types.PriorityHigh
	case types.CategorySoft:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

func resourcesFor(skill string) []string {
	if resources, ok := learningResources[strings.ToLower(skill)]; ok {
		out := make([]string, len(resources))
		copy(out, resources)
		return out
	}
	return genericResources(skill)
}

func timeFor(priority string) string {
	switch priority {
	case types.PriorityHigh:
		return timeHighPriority
	case types.PriorityMedium:
		return timeMediumPriority
	default:
		return timeLowPriority
	}
}
