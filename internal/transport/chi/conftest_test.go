package chi

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
	healthuc "github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/usecase/health"
)

type mockAsk struct {
	answerFn func(ctx context.Context, query domain.Query) domain.Answer
	lastQ    domain.Query
}

func (m *mockAsk) Answer(ctx context.Context, query domain.Query) domain.Answer {
	m.lastQ = query
	if m.answerFn != nil {
		return m.answerFn(ctx, query)
	}
	return domain.Answer{Text: "stub answer", Source: domain.SourceLexical}
}

type mockFAQ struct {
	addFn    func(ctx context.Context, question, answer string) (domain.FaqEntry, error)
	removeFn func(ctx context.Context, id string) error
	lastID   string
}

func (m *mockFAQ) Add(ctx context.Context, question, answer string) (domain.FaqEntry, error) {
	if m.addFn != nil {
		return m.addFn(ctx, question, answer)
	}
	return domain.NewFaqEntry(question, answer)
}

func (m *mockFAQ) Remove(ctx context.Context, id string) error {
	m.lastID = id
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return nil
}

type mockFeedback struct {
	lastID       string
	lastPositive bool
	calls        int
}

func (m *mockFeedback) Record(_ context.Context, messageID string, positive bool) {
	m.calls++
	m.lastID = messageID
	m.lastPositive = positive
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report {
	if m.report.Status == "" {
		return healthuc.Report{
			Status: healthuc.Healthy,
			Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK},
		}
	}
	return m.report
}

type testFixture struct {
	router   *chirouter.Mux
	ask      *mockAsk
	faqs     *mockFAQ
	feedback *mockFeedback
	health   *mockHealth
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		ask:      &mockAsk{},
		faqs:     &mockFAQ{},
		feedback: &mockFeedback{},
		health:   &mockHealth{},
	}

	server := NewServer(f.ask, f.faqs, f.feedback, f.health, zap.NewNop())
	f.router = chirouter.NewRouter()
	server.Routes(f.router)
	return f
}

func (f *testFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}
