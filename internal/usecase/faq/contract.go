package faq

import (
	"context"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

// Repository persists FAQ entries.
type Repository interface {
	Save(ctx context.Context, entry domain.FaqEntry) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	LoadAll(ctx context.Context) ([]domain.FaqRecord, error)
}

// VectorIndexer maintains the vector index over stored entries.
type VectorIndexer interface {
	EnsureIndex(ctx context.Context) error
	Index(ctx context.Context, id string, vector []float32) error
}

// Embedder vectorizes FAQ questions for indexing.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
