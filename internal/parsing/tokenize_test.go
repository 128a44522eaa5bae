package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_LowercasesAndStripsPunctuation(t *testing.T) {
	tokens := Tokenize("Senior Backend Engineer! (Python/Django)")
	assert.Equal(t, []string{"senior", "backend", "engineer", "python", "django"}, tokens)
}

func TestTokenize_DropsShortAndStopWords(t *testing.T) {
	tokens := Tokenize("we are the team you will join to do sql")
	assert.Equal(t, []string{"sql"}, tokens)
}

func TestTokenize_PreservesTechSuffixes(t *testing.T) {
	tokens := Tokenize("C++ and C# with Node.js.")
	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "node.js")
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("!!! ???"))
}

func TestTokenSet_Deduplicates(t *testing.T) {
	set := TokenSet("docker docker kubernetes")
	assert.Len(t, set, 2)
	assert.True(t, set["docker"])
	assert.True(t, set["kubernetes"])
}

func TestTokenize_Deterministic(t *testing.T) {
	text := "golang microservices kafka postgres golang"
	first := Tokenize(text)
	second := Tokenize(text)
	assert.Equal(t, first, second)
}
