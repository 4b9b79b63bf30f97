package domain

import "strings"

// Query is one user question with its requested answer language.
type Query struct {
	Text     string
	Language string
}

// NewQuery normalizes a raw question and language into a Query.
// An empty language defaults to DefaultLanguage.
func NewQuery(text, language string) Query {
	language = strings.TrimSpace(strings.ToLower(language))
	if language == "" {
		language = DefaultLanguage
	}
	return Query{Text: text, Language: language}
}
