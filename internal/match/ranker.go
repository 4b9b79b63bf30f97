package match

import (
	"sort"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

// DefaultTopMatches is how many ranked matches feed answer synthesis.
const DefaultTopMatches = 3

// Rank scores every FAQ against the query and returns the best limit matches
// in descending score order. The sort is stable, so exact ties keep their
// collection order. An empty collection yields an empty slice; limit <= 0
// falls back to DefaultTopMatches.
func Rank(query string, faqs []domain.FaqEntry, limit int) []domain.Match {
	if limit <= 0 {
		limit = DefaultTopMatches
	}

	matches := make([]domain.Match, 0, len(faqs))
	for _, faq := range faqs {
		matches = append(matches, domain.Match{FAQ: faq, Score: Score(query, faq)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
