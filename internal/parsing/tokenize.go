// Package parsing provides pure text-extraction helpers: tokenization,
// required-years and salary-range parsing, and employment-duration estimation.
package parsing

import (
	"strings"
	"unicode"
)

// minTokenLength is the floor below which tokens are discarded.
const minTokenLength = 3

// stopWords filters common English words that add noise to keyword matching.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "per": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
	"required": true, "requirements": true, "experience": true,
	"years": true, "must": true, "should": true, "strong": true,
	"knowledge": true, "skills": true, "ability": true, "including": true,
}

// Tokenize normalizes free text into lowercase keyword tokens: punctuation
// stripped, stop words removed, tokens shorter than minTokenLength dropped.
// Tech suffixes like "c++", "c#" and "node.js" are preserved by treating
// + # . as word characters. Pure function; token order follows the text.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := word.String()
		word.Reset()
		w = strings.TrimRight(w, ".")
		if w == "" || stopWords[w] {
			return
		}
		// "c#" and "c++" style names stay even below the length floor.
		if len([]rune(w)) >= minTokenLength || strings.ContainsAny(w, "+#") {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// TokenSet tokenizes text into a deduplicated lookup set.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		set[tok] = true
	}
	return set
}

// IsStopWord reports whether w belongs to the fixed stopword set.
func IsStopWord(w string) bool {
	return stopWords[strings.ToLower(w)]
}
