package match

import (
	"strings"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

// NoMatchMessage is returned when no FAQ matched at all. It is a normal
// answer, not an error: low-relevance queries are an expected outcome.
const NoMatchMessage = "I couldn't find a good match for your question. " +
	"Could you please rephrase it or ask something else?"

// Synthesis thresholds. Fixed constants, not configuration: downstream
// behavior depends on the exact cutoffs, including their strictness.
const (
	// highConfidence: a top score strictly above this returns the answer verbatim.
	highConfidence = 0.7
	// relevanceCutoff: matches strictly above this participate in fusion.
	relevanceCutoff = 0.3
	// duplicateSimilarity: answers at least this similar count as one answer.
	duplicateSimilarity = 0.7
)

const (
	fusionPreamble      = "Based on your question:\n\n"
	additionalInfoLabel = "Additional information: "
)

// Synthesize turns ranked matches into the final answer text. The decision
// tree has four leaves: no matches at all, a single high-confidence answer,
// a fused multi-answer response, or the top answer verbatim.
func Synthesize(matches []domain.Match) string {
	if len(matches) == 0 {
		return NoMatchMessage
	}

	if matches[0].Score > highConfidence {
		return matches[0].FAQ.Answer
	}

	var relevant []domain.Match
	for _, m := range matches {
		if m.Score > relevanceCutoff {
			relevant = append(relevant, m)
		}
	}

	if len(relevant) > 1 {
		top := relevant[0].FAQ.Answer

		// Two near-identical answers collapse to the top one.
		if similarityRatio(top, relevant[1].FAQ.Answer) > duplicateSimilarity {
			return top
		}

		var b strings.Builder
		b.WriteString(fusionPreamble)
		b.WriteString(top)
		b.WriteString("\n\n")
		for _, m := range relevant[1:] {
			if similarityRatio(m.FAQ.Answer, top) < duplicateSimilarity {
				b.WriteString(additionalInfoLabel)
				b.WriteString(m.FAQ.Answer)
				b.WriteString("\n\n")
			}
		}
		return strings.TrimSpace(b.String())
	}

	return matches[0].FAQ.Answer
}
