package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// KeyPrefix namespaces every Redis key written by this service.
const KeyPrefix = "faqbot:"

// DefaultLanguage is the language answers are stored in; translation is
// skipped for it.
const DefaultLanguage = "en"

// FaqEntry is a stored question/answer pair eligible for retrieval.
// Entries are immutable once created.
type FaqEntry struct {
	ID       string
	Question string
	Answer   string
}

// NewFaqEntry builds an entry from raw question and answer text.
// The ID is the SHA-256 hex digest of the question, so the same question
// always maps to the same storage key regardless of platform.
func NewFaqEntry(question, answer string) (FaqEntry, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return FaqEntry{}, ErrInvalidFAQ
	}

	h := sha256.Sum256([]byte(question))
	return FaqEntry{
		ID:       hex.EncodeToString(h[:]),
		Question: question,
		Answer:   answer,
	}, nil
}

// ReconstructFaqEntry rebuilds an entry from storage without re-validating.
func ReconstructFaqEntry(id, question, answer string) FaqEntry {
	return FaqEntry{ID: id, Question: question, Answer: answer}
}

// FaqRecord pairs a stored entry with its vector-index state, as reported
// by the repository during warm-up.
type FaqRecord struct {
	Entry   FaqEntry
	Indexed bool
}
