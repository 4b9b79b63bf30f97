// Package chi exposes the chatbot over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
	healthuc "github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/usecase/health"
)

// Error codes returned in errorResponse.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeInternalError    = "internal_error"
)

// AskService answers user questions.
type AskService interface {
	Answer(ctx context.Context, query domain.Query) domain.Answer
}

// FAQService manages entries in the knowledge base.
type FAQService interface {
	Add(ctx context.Context, question, answer string) (domain.FaqEntry, error)
	Remove(ctx context.Context, id string) error
}

// FeedbackService records answer ratings.
type FeedbackService interface {
	Record(ctx context.Context, messageID string, positive bool)
}

// HealthService reports component health.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server holds the HTTP handlers.
type Server struct {
	ask      AskService
	faqs     FAQService
	feedback FeedbackService
	health   HealthService
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	ask AskService,
	faqs FAQService,
	feedback FeedbackService,
	health HealthService,
	logger *zap.Logger,
) *Server {
	return &Server{
		ask:      ask,
		faqs:     faqs,
		feedback: feedback,
		health:   health,
		logger:   logger,
	}
}

// Routes registers all endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/ask", s.handleAsk)
	r.Post("/feedback", s.handleFeedback)
	r.Post("/admin/faqs", s.handleAddFAQ)
	r.Delete("/admin/faqs/{id}", s.handleRemoveFAQ)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// --- DTOs ---

type askRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type addFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type feedbackRequest struct {
	MessageID  string `json:"messageId"`
	IsPositive bool   `json:"isPositive"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// --- Handlers ---

// handleAsk handles POST /ask.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Question == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Question is required")
		return
	}

	answer := s.ask.Answer(r.Context(), domain.NewQuery(req.Question, req.Language))
	writeJSON(w, http.StatusOK, askResponse{Answer: answer.Text})
}

// handleAddFAQ handles POST /admin/faqs.
func (s *Server) handleAddFAQ(w http.ResponseWriter, r *http.Request) {
	var req addFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if _, err := s.faqs.Add(r.Context(), req.Question, req.Answer); err != nil {
		if errors.Is(err, domain.ErrInvalidFAQ) {
			writeError(w, http.StatusBadRequest, codeValidationFailed, domain.ErrInvalidFAQ.Error())
			return
		}
		s.logger.Error("Failed to add FAQ", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "FAQ added successfully"})
}

// handleRemoveFAQ handles DELETE /admin/faqs/{id}.
func (s *Server) handleRemoveFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "FAQ id is required")
		return
	}

	if err := s.faqs.Remove(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrFAQNotFound) {
			writeError(w, http.StatusNotFound, codeNotFound, domain.ErrFAQNotFound.Error())
			return
		}
		s.logger.Error("Failed to remove FAQ", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "FAQ removed"})
}

// handleFeedback handles POST /feedback.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.MessageID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "messageId is required")
		return
	}

	s.feedback.Record(r.Context(), req.MessageID, req.IsPositive)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Feedback recorded"})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
