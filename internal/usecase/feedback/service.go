// Package feedback records user ratings of served answers.
package feedback

import (
	"context"

	"go.uber.org/zap"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/metrics"
)

// Service records feedback as structured log events and counters. There is
// no feedback store; the log stream is the system of record.
type Service struct {
	logger *zap.Logger
}

// New creates a feedback service.
func New(l *zap.Logger) *Service {
	return &Service{logger: l}
}

// Record logs one rating for a previously served answer.
func (s *Service) Record(_ context.Context, messageID string, positive bool) {
	rating := "negative"
	if positive {
		rating = "positive"
	}

	metrics.FeedbackTotal.WithLabelValues(rating).Inc()

	s.logger.Info("Feedback received",
		zap.String("message_id", messageID),
		zap.String("rating", rating),
	)
}
