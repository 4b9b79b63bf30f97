package domain

import "context"

// EmbeddingResult holds a computed embedding and its token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// Translator translates text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, language string) (string, error)
}

// HealthChecker is implemented by collaborators that can verify their own
// availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
