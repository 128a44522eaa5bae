package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_ExactAndContainment(t *testing.T) {
	assert.True(t, Match("javascript", "javascript"))
	assert.True(t, Match("java", "javascript")) // substring either direction
	assert.True(t, Match("javascript", "java"))
	assert.False(t, Match("python", "golang"))
}

func TestMatch_SynonymGroups(t *testing.T) {
	assert.True(t, Match("js", "ecmascript"))
	assert.True(t, Match("k8s", "kubernetes"))
	assert.True(t, Match("aws", "amazon web services"))
	assert.False(t, Match("js", "ts"))
}

func TestMatch_FuzzyThreshold(t *testing.T) {
	// One substitution in a 10-rune word: similarity 0.9.
	assert.True(t, Match("javascrapt", "javascript"))
	// Distance 4 over length 6: similarity well under 0.8.
	assert.False(t, Match("oracle", "linux"))
}

func TestMatch_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"js", "javascript"},
		{"postgres", "postgresql"},
		{"kubernetes", "helm"},
		{"pythonn", "python"},
		{"", "python"},
	}
	for _, p := range pairs {
		assert.Equal(t, Match(p[0], p[1]), Match(p[1], p[0]), "Match(%q,%q) not symmetric", p[0], p[1])
	}
}

func TestMatch_EmptyNeverMatches(t *testing.T) {
	assert.False(t, Match("", ""))
	assert.False(t, Match("go", ""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("sql", "sql"), 1e-9)
	assert.InDelta(t, 0.8, Similarity("abcde", "abcdX"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein([]rune(tt.a), []rune(tt.b)), "%q vs %q", tt.a, tt.b)
	}
}
