package domain

// Match is one FAQ scored against a query. The score is a weighted sum of
// lexical signals; bonuses accumulate, so it is not capped at 1.0. Only the
// relative order of scores matters downstream.
type Match struct {
	FAQ   FaqEntry
	Score float64
}

// AnswerSource records which retrieval path produced an answer.
type AnswerSource string

const (
	// SourceVector means the answer came from the vector nearest-neighbor lookup.
	SourceVector AnswerSource = "vector"
	// SourceLexical means the answer came from the lexical ranking fallback.
	SourceLexical AnswerSource = "lexical"
	// SourceNone means no FAQ matched and the fixed no-match message was returned.
	SourceNone AnswerSource = "none"
)

// Answer is the final response produced for a query.
type Answer struct {
	Text   string
	Source AnswerSource
}

// Lookup is the explicit outcome of a vector nearest-neighbor attempt.
// Found=false is a normal result (empty index, no neighbor), not an error.
type Lookup struct {
	Answer string
	Score  float64
	Found  bool
}
