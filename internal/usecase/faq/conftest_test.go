package faq

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

type mockRepo struct {
	saveFn    func(ctx context.Context, entry domain.FaqEntry) error
	existsFn  func(ctx context.Context, id string) (bool, error)
	deleteFn  func(ctx context.Context, id string) error
	loadAllFn func(ctx context.Context) ([]domain.FaqRecord, error)
}

func (m *mockRepo) Save(ctx context.Context, entry domain.FaqEntry) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, entry)
	}
	return nil
}

func (m *mockRepo) Exists(ctx context.Context, id string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockRepo) LoadAll(ctx context.Context) ([]domain.FaqRecord, error) {
	if m.loadAllFn != nil {
		return m.loadAllFn(ctx)
	}
	return nil, nil
}

type mockIndexer struct {
	ensureFn func(ctx context.Context) error
	indexFn  func(ctx context.Context, id string, vector []float32) error
}

func (m *mockIndexer) EnsureIndex(ctx context.Context) error {
	if m.ensureFn != nil {
		return m.ensureFn(ctx)
	}
	return nil
}

func (m *mockIndexer) Index(ctx context.Context, id string, vector []float32) error {
	if m.indexFn != nil {
		return m.indexFn(ctx, id, vector)
	}
	return nil
}

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return m.result, m.err
}

func newTestService(t *testing.T) (*Service, *mockRepo, *mockIndexer, *mockEmbedder) {
	t.Helper()
	repo := &mockRepo{}
	indexer := &mockIndexer{}
	embed := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{0.1, 0.2}}}
	svc := New(repo, indexer, embed, NewCollection(), zap.NewNop())
	return svc, repo, indexer, embed
}
