// Package skills provides synonym-aware skill matching: canonical synonym
// groups, fuzzy edit-distance comparison, keyword categorization and
// CV-vs-job keyword overlap.
package skills

import "strings"

// similarityThreshold is the normalized edit-distance similarity above which
// two terms are considered the same skill.
const similarityThreshold = 0.8

// synonymGroups maps semantically equivalent skill spellings. Any two terms
// in the same group match regardless of edit distance.
var synonymGroups = [][]string{
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"golang", "go lang"},
	{"python", "py"},
	{"c#", "csharp", ".net", "dotnet"},
	{"kubernetes", "k8s"},
	{"react", "react.js", "reactjs"},
	{"vue", "vue.js", "vuejs"},
	{"angular", "angularjs"},
	{"node.js", "nodejs", "node"},
	{"postgresql", "postgres"},
	{"microsoft sql server", "mssql", "sql server"},
	{"amazon web services", "aws"},
	{"google cloud platform", "gcp", "google cloud"},
	{"microsoft azure", "azure"},
	{"continuous integration", "ci/cd", "cicd"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"user experience", "ux"},
	{"user interface", "ui"},
	{"quality assurance", "qa"},
	{"business analysis", "business analyst"},
	{"project management", "project manager"},
	{"customer relationship management", "crm"},
	{"enterprise resource planning", "erp", "sap"},
	{"human resources", "hr"},
	{"search engine optimization", "seo"},
	{"accounts payable", "creditors"},
	{"accounts receivable", "debtors"},
	{"occupational health and safety", "ohs", "health and safety"},
}

// synonymIndex maps each lowercased term to its group index, built once.
var synonymIndex = func() map[string]int {
	idx := make(map[string]int)
	for i, group := range synonymGroups {
		for _, term := range group {
			idx[term] = i
		}
	}
	return idx
}()

// Match reports whether two skill terms refer to the same skill: exact
// substring containment in either direction, shared synonym group, or
// normalized Levenshtein similarity at or above similarityThreshold.
// Match is symmetric.
func Match(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	if ga, ok := synonymIndex[a]; ok {
		if gb, ok := synonymIndex[b]; ok && ga == gb {
			return true
		}
	}
	return Similarity(a, b) >= similarityThreshold
}

// Similarity returns 1 − d/len where d is the Levenshtein distance and len
// is the longer string's rune length. Result is in [0,1]; identical strings
// score 1.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	if longer == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(longer)
}

// levenshtein computes the classic dynamic-programming edit distance with
// unit insert/delete/substitute costs, using two rolling rows.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
