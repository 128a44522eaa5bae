package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careza/matchengine/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		OverallScore:                78,
		SkillsMatch:                 80,
		ExperienceMatch:             100,
		LocationMatch:               70,
		SalaryMatch:                 50,
		ATSCompatibility:            85,
		MatchReasons:                []string{"Your experience meets the posting's requirement."},
		PredictedApplicationSuccess: 62,
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH RESULT")
	assert.Contains(t, out, "Overall:     78")
	assert.Contains(t, out, "experience meets")
}

func TestPrintMatchResult_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankedMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := []types.JobMatch{
		{
			Job:    types.JobPosting{Title: "Backend Developer", Company: "TechCo"},
			Result: types.MatchResult{OverallScore: 82, PredictedApplicationSuccess: 70},
		},
	}
	p.PrintRankedMatches(matches)

	out := buf.String()
	assert.Contains(t, out, "RANKED MATCHES")
	assert.Contains(t, out, "Backend Developer")
	assert.Contains(t, out, "Overall: 82")
}

func TestPrintRankedMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRankedMatches(nil)
	assert.Contains(t, buf.String(), "No postings matched")
}

func TestPrintATSScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSScore(&types.DetailedATSScore{
		Overall:            72,
		Industry:           "technology",
		IndustryCompliance: 80,
		Sections: map[string]types.SectionScore{
			"summary": {Score: 40, MaxScore: 100, Priority: types.PriorityHigh},
		},
		SystemScores: []types.ATSSystemScore{{System: "Greenhouse", Score: 60}},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS AUDIT")
	assert.Contains(t, out, "technology")
	assert.Contains(t, out, "summary")
	assert.Contains(t, out, "Greenhouse")
}

func TestPrintSkillGaps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGaps([]types.SkillGap{
		{Skill: "kubernetes", Category: types.CategoryTechnical, Priority: types.PriorityHigh, EstimatedTimeToLearn: "2-4 weeks"},
	})

	out := buf.String()
	assert.Contains(t, out, "SKILL GAPS")
	assert.Contains(t, out, "kubernetes")
	assert.Contains(t, out, "2-4 weeks")
}
