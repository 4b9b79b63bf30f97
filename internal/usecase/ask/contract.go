package ask

import (
	"context"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

// FAQSource provides the current FAQ collection for lexical matching.
type FAQSource interface {
	Snapshot() []domain.FaqEntry
}

// VectorSearcher runs nearest-neighbor lookups over indexed FAQs.
type VectorSearcher interface {
	Nearest(ctx context.Context, vector []float32) (domain.Lookup, error)
}

// Embedder vectorizes the incoming question.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Translator translates answers into the requested language.
type Translator interface {
	Translate(ctx context.Context, text, language string) (string, error)
}
