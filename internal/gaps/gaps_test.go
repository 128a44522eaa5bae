package gaps

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careza/matchengine/internal/skills"
	"github.com/careza/matchengine/internal/types"
)

func keywordMatch(keyword, category string, matched bool) skills.KeywordMatch {
	return skills.KeywordMatch{
		Keyword:  keyword,
		Category: category,
		Weight:   skills.CategoryWeight(category),
		Matched:  matched,
	}
}

func TestAnalyze_OnlyMissingKeywordsBecomeGaps(t *testing.T) {
	matches := []skills.KeywordMatch{
		keywordMatch("python", types.CategoryTechnical, true),
		keywordMatch("docker", types.CategoryTechnical, false),
		keywordMatch("leadership", types.CategorySoft, false),
	}

	result := Analyze(matches)
	require.Len(t, result, 2)
	assert.Equal(t, "docker", result[0].Skill)
	assert.Equal(t, "leadership", result[1].Skill)
}

func TestAnalyze_PriorityByCategory(t *testing.T) {
	matches := []skills.KeywordMatch{
		keywordMatch("docker", types.CategoryTechnical, false),
		keywordMatch("banking", types.CategoryIndustry, false),
		keywordMatch("leadership", types.CategorySoft, false),
		keywordMatch("sunshine", types.CategoryGeneral, false),
	}

	result := Analyze(matches)
	require.Len(t, result, 4)
	assert.Equal(t, types.PriorityHigh, result[0].Priority)
	assert.Equal(t, types.PriorityHigh, result[1].Priority)
	assert.Equal(t, types.PriorityMedium, result[2].Priority)
	assert.Equal(t, types.PriorityLow, result[3].Priority)

	assert.Equal(t, "2-4 weeks", result[0].EstimatedTimeToLearn)
	assert.Equal(t, "1-3 weeks", result[2].EstimatedTimeToLearn)
	assert.Equal(t, "3-7 days", result[3].EstimatedTimeToLearn)
}

func TestAnalyze_CuratedAndGenericResources(t *testing.T) {
	matches := []skills.KeywordMatch{
		keywordMatch("Docker", types.CategoryTechnical, false),
		keywordMatch("cobol", types.CategoryGeneral, false),
	}

	result := Analyze(matches)
	require.Len(t, result, 2)

	// Curated lookup is case-insensitive.
	assert.Contains(t, result[0].LearningResources[0], "Docker")
	// Unknown skills fall back to generic guidance naming the skill.
	require.NotEmpty(t, result[1].LearningResources)
	assert.Contains(t, result[1].LearningResources[0], "cobol")
}

func TestAnalyze_CapsAtMaxGaps(t *testing.T) {
	var matches []skills.KeywordMatch
	for i := 0; i < MaxGaps+5; i++ {
		matches = append(matches, keywordMatch(fmt.Sprintf("skill%d", i), types.CategoryGeneral, false))
	}

	result := Analyze(matches)
	assert.Len(t, result, MaxGaps)
	// Frequency order preserved: first missing keyword stays first.
	assert.Equal(t, "skill0", result[0].Skill)
}

func TestAnalyze_NoGaps(t *testing.T) {
	matches := []skills.KeywordMatch{
		keywordMatch("python", types.CategoryTechnical, true),
	}
	assert.Empty(t, Analyze(matches))
}
