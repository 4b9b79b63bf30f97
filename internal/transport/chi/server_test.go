package chi

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
	healthuc "github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/usecase/health"
)

func TestAsk_ReturnsAnswer(t *testing.T) {
	f := newTestFixture(t)
	f.ask.answerFn = func(_ context.Context, _ domain.Query) domain.Answer {
		return domain.Answer{Text: "9-5 Mon-Fri", Source: domain.SourceVector}
	}

	rr := f.do("POST", "/ask", `{"question":"when are you open?"}`)

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp askResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Answer != "9-5 Mon-Fri" {
		t.Errorf("unexpected answer: %q", resp.Answer)
	}
}

func TestAsk_DefaultsLanguage(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("POST", "/ask", `{"question":"hello"}`)

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if f.ask.lastQ.Language != "en" {
		t.Errorf("expected default language en, got %q", f.ask.lastQ.Language)
	}
}

func TestAsk_PassesLanguage(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("POST", "/ask", `{"question":"hola","language":"ES"}`)

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if f.ask.lastQ.Language != "es" {
		t.Errorf("expected normalized language es, got %q", f.ask.lastQ.Language)
	}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("POST", "/ask", `{"question":""}`)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var resp errorResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Code != codeValidationFailed {
		t.Errorf("unexpected error code: %q", resp.Code)
	}
}

func TestAsk_MalformedBody(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("POST", "/ask", `{"question":`)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAddFAQ_Created(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("POST", "/admin/faqs", `{"question":"q?","answer":"a."}`)

	if rr.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp messageResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Message != "FAQ added successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestAddFAQ_Invalid(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("POST", "/admin/faqs", `{"question":"  ","answer":"a"}`)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAddFAQ_StoreError(t *testing.T) {
	f := newTestFixture(t)
	f.faqs.addFn = func(_ context.Context, _, _ string) (domain.FaqEntry, error) {
		return domain.FaqEntry{}, errors.New("store down")
	}

	rr := f.do("POST", "/admin/faqs", `{"question":"q","answer":"a"}`)

	if rr.Code != 500 {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestRemoveFAQ_OK(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("DELETE", "/admin/faqs/abc123", "")

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if f.faqs.lastID != "abc123" {
		t.Errorf("expected remove for abc123, got %q", f.faqs.lastID)
	}
	var resp messageResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Message != "FAQ removed" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestRemoveFAQ_NotFound(t *testing.T) {
	f := newTestFixture(t)
	f.faqs.removeFn = func(_ context.Context, _ string) error {
		return domain.ErrFAQNotFound
	}

	rr := f.do("DELETE", "/admin/faqs/missing", "")

	if rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var resp errorResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Code != codeNotFound {
		t.Errorf("unexpected error code: %q", resp.Code)
	}
}

func TestRemoveFAQ_StoreError(t *testing.T) {
	f := newTestFixture(t)
	f.faqs.removeFn = func(_ context.Context, _ string) error {
		return errors.New("store down")
	}

	rr := f.do("DELETE", "/admin/faqs/abc123", "")

	if rr.Code != 500 {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestFeedback_Recorded(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("POST", "/feedback", `{"messageId":"msg-1","isPositive":true}`)

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if f.feedback.calls != 1 || f.feedback.lastID != "msg-1" || !f.feedback.lastPositive {
		t.Errorf("feedback not recorded as expected: %+v", f.feedback)
	}
	var resp messageResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Message != "Feedback recorded" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestFeedback_MissingMessageID(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("POST", "/feedback", `{"isPositive":false}`)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if f.feedback.calls != 0 {
		t.Error("feedback must not be recorded without messageId")
	}
}

func TestHealth_OK(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("GET", "/health", "")

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp healthResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Status != "ok" {
		t.Errorf("unexpected status: %q", resp.Status)
	}
}

func TestHealth_Degraded(t *testing.T) {
	f := newTestFixture(t)
	f.health.report = healthuc.Report{
		Status: healthuc.Degraded,
		Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckError},
	}

	rr := f.do("GET", "/health", "")

	if rr.Code != 503 {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestMetrics_Exposed(t *testing.T) {
	f := newTestFixture(t)

	rr := f.do("GET", "/metrics", "")

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.Len() == 0 {
		t.Error("expected non-empty metrics body")
	}
}
