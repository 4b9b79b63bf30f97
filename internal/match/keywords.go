// Package match implements the deterministic lexical matcher: keyword
// extraction, category classification, the composite relevance scorer,
// the ranker, and answer synthesis. Everything here is a pure function
// over immutable inputs.
package match

import (
	"strings"
	"unicode"
)

// stopWords are dropped during keyword extraction. Question words like
// "what" and "where" are deliberately kept.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"is": {}, "are": {}, "was": {}, "were": {},
}

// TokenSet is a set of normalized, stop-word-filtered tokens.
type TokenSet map[string]struct{}

// Contains reports whether the set holds the given token.
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Intersection returns the number of tokens shared with other.
func (s TokenSet) Intersection(other TokenSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for token := range small {
		if large.Contains(token) {
			n++
		}
	}
	return n
}

// Words returns the tokens as a space-joinable slice. Order is unspecified.
func (s TokenSet) Words() []string {
	words := make([]string, 0, len(s))
	for token := range s {
		words = append(words, token)
	}
	return words
}

// ExtractKeywords lowercases text, strips every rune that is neither a word
// character nor whitespace, splits on whitespace, and drops stop words.
// Empty input yields an empty set. Pure and total.
func ExtractKeywords(text string) TokenSet {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if isWordRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	tokens := make(TokenSet)
	for _, word := range strings.Fields(b.String()) {
		if _, stop := stopWords[word]; !stop {
			tokens[word] = struct{}{}
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
