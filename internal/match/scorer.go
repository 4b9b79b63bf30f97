package match

import (
	"strings"
	"unicode/utf8"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

// Signal weights. They sum to 1.0, but the composite score is not bounded by
// 1.0: the category and phrase signals accumulate bonuses without a cap, and
// only the relative ordering of scores matters downstream.
const (
	questionWeight   = 0.30
	answerWeight     = 0.20
	similarityWeight = 0.20
	categoryWeight   = 0.20
	phraseWeight     = 0.10
)

const (
	categoryQuestionBonus = 0.2
	categoryAnswerBonus   = 0.1
	phraseQuestionBonus   = 0.3
	phraseAnswerBonus     = 0.2

	// Query words must be longer than this to count as phrases.
	minPhraseRunes = 3
)

// Score computes the composite relevance of one FAQ against a query.
// Deterministic and pure: leading/trailing whitespace around the query does
// not change the score, and degenerate inputs (empty query, empty FAQ fields)
// score zero on the affected signals rather than failing.
func Score(query string, faq domain.FaqEntry) float64 {
	query = strings.TrimSpace(query)

	queryTokens := ExtractKeywords(query)
	questionTokens := ExtractKeywords(faq.Question)
	answerTokens := ExtractKeywords(faq.Answer)

	var questionScore, answerScore float64
	if len(queryTokens) > 0 {
		if denom := max(len(queryTokens), len(questionTokens)); denom > 0 {
			questionScore = float64(queryTokens.Intersection(questionTokens)) / float64(denom)
		}
		answerScore = float64(queryTokens.Intersection(answerTokens)) / float64(len(queryTokens))
	}

	similarityScore := similarityRatio(query, faq.Question)

	question := strings.ToLower(faq.Question)
	answer := strings.ToLower(faq.Answer)

	// Each category the query maps to contributes independently; the bonus is
	// a substring check against the raw question/answer, not the token sets.
	var categoryScore float64
	for _, category := range Classify(queryTokens) {
		if containsAny(question, categoryKeywords[category]) {
			categoryScore += categoryQuestionBonus
		}
		if containsAny(answer, categoryKeywords[category]) {
			categoryScore += categoryAnswerBonus
		}
	}

	// Long query words found verbatim inside the FAQ accumulate uncapped.
	var phraseScore float64
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if utf8.RuneCountInString(word) <= minPhraseRunes {
			continue
		}
		if strings.Contains(question, word) {
			phraseScore += phraseQuestionBonus
		}
		if strings.Contains(answer, word) {
			phraseScore += phraseAnswerBonus
		}
	}

	return questionScore*questionWeight +
		answerScore*answerWeight +
		similarityScore*similarityWeight +
		categoryScore*categoryWeight +
		phraseScore*phraseWeight
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
