package recommendations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careza/matchengine/internal/skills"
	"github.com/careza/matchengine/internal/types"
)

func missingTech(keyword string) skills.KeywordMatch {
	return skills.KeywordMatch{Keyword: keyword, Category: types.CategoryTechnical, Weight: 1.5}
}

func TestGenerate_StrongMatch(t *testing.T) {
	out := Generate(85, nil, nil)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "apply")
}

func TestGenerate_LowScoreLeadsWithCaution(t *testing.T) {
	out := Generate(30, nil, nil)
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "stretch")
	assert.Contains(t, out[1], "experience")
}

func TestGenerate_FixedOrder(t *testing.T) {
	matches := []skills.KeywordMatch{
		missingTech("kubernetes"),
		missingTech("terraform"),
		{Keyword: "communication", Category: types.CategorySoft, Matched: true},
	}
	gapList := []types.SkillGap{
		{Skill: "kubernetes", Priority: types.PriorityHigh},
		{Skill: "terraform", Priority: types.PriorityHigh},
		{Skill: "communication", Priority: types.PriorityMedium},
	}

	out := Generate(40, matches, gapList)
	require.Len(t, out, 4)
	assert.Contains(t, out[0], "stretch")
	assert.Contains(t, out[1], "kubernetes, terraform")
	assert.Contains(t, out[2], "kubernetes, terraform")
	assert.Contains(t, out[3], "experience")
}

func TestGenerate_CapsListedSkills(t *testing.T) {
	matches := []skills.KeywordMatch{
		missingTech("go"), missingTech("rust"), missingTech("zig"), missingTech("erlang"),
	}
	out := Generate(75, matches, nil)
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "go, rust, zig")
	assert.NotContains(t, out[0], "erlang")
}

func TestGenerate_Deterministic(t *testing.T) {
	matches := []skills.KeywordMatch{missingTech("go")}
	gapList := []types.SkillGap{{Skill: "go", Priority: types.PriorityHigh}}

	first := Generate(55, matches, gapList)
	second := Generate(55, matches, gapList)
	assert.Equal(t, first, second)
}
