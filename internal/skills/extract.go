package skills

import (
	"sort"
	"strings"

	"github.com/careza/matchengine/internal/parsing"
	"github.com/careza/matchengine/internal/types"
)

// DefaultJobKeywordLimit caps how many job keywords are extracted per posting.
const DefaultJobKeywordLimit = 40

// TopJobKeywords extracts the most frequent non-stopword tokens from job
// text, ranked by frequency descending with ties broken by first appearance.
func TopJobKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	var order []string

	for _, tok := range parsing.Tokenize(text) {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	// order already holds first-seen order; a stable sort by count keeps it
	// as the tiebreak.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}

// KeywordMatch is one job keyword classified against a CV.
type KeywordMatch struct {
	Keyword  string
	Category string
	Weight   float64
	Matched  bool
}

// CandidateTerms builds the set of terms a CV can match against: the
// deduplicated token set of its full text plus the explicit skills list.
func CandidateTerms(cv *types.CVProfile) []string {
	seen := make(map[string]bool)
	var terms []string
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && !seen[s] {
			seen[s] = true
			terms = append(terms, s)
		}
	}

	for _, skill := range cv.AllSkills() {
		add(skill)
	}
	for _, tok := range parsing.Tokenize(cv.FullText()) {
		add(tok)
	}
	return terms
}

// MatchKeywords classifies every job keyword as matched or missing against
// the candidate's terms, preserving the job-keyword frequency order.
func MatchKeywords(jobKeywords []string, candidateTerms []string) []KeywordMatch {
	results := make([]KeywordMatch, 0, len(jobKeywords))
	for _, kw := range jobKeywords {
		category := Categorize(kw)
		results = append(results, KeywordMatch{
			Keyword:  kw,
			Category: category,
			Weight:   CategoryWeight(category),
			Matched:  matchesAny(kw, candidateTerms),
		})
	}
	return results
}

// matchesAny reports whether the keyword matches any candidate term per the
// synonym resolver.
func matchesAny(keyword string, terms []string) bool {
	for _, term := range terms {
		if Match(keyword, term) {
			return true
		}
	}
	return false
}
