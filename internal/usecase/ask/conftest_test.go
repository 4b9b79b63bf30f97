package ask

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

type mockFAQSource struct {
	entries []domain.FaqEntry
}

func (m *mockFAQSource) Snapshot() []domain.FaqEntry {
	return m.entries
}

type mockSearcher struct {
	nearestFn func(ctx context.Context, vector []float32) (domain.Lookup, error)
	calls     int
}

func (m *mockSearcher) Nearest(ctx context.Context, vector []float32) (domain.Lookup, error) {
	m.calls++
	if m.nearestFn != nil {
		return m.nearestFn(ctx, vector)
	}
	return domain.Lookup{}, nil
}

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return m.result, m.err
}

type mockTranslator struct {
	translateFn func(ctx context.Context, text, language string) (string, error)
	calls       int
}

func (m *mockTranslator) Translate(ctx context.Context, text, language string) (string, error) {
	m.calls++
	if m.translateFn != nil {
		return m.translateFn(ctx, text, language)
	}
	return text, nil
}

func newTestService(t *testing.T, entries []domain.FaqEntry) (*Service, *mockSearcher, *mockEmbedder, *mockTranslator) {
	t.Helper()
	searcher := &mockSearcher{}
	embed := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{0.1, 0.2}}}
	translator := &mockTranslator{}
	svc := New(&mockFAQSource{entries: entries}, searcher, embed, translator, zap.NewNop())
	return svc, searcher, embed, translator
}

func mustEntry(t *testing.T, question, answer string) domain.FaqEntry {
	t.Helper()
	entry, err := domain.NewFaqEntry(question, answer)
	if err != nil {
		t.Fatalf("invalid test entry: %v", err)
	}
	return entry
}
