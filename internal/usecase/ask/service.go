// Package ask answers user questions: vector retrieval first, lexical
// ranking as the fallback, then optional translation of the result.
package ask

import (
	"context"

	"go.uber.org/zap"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/match"
	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/metrics"
)

// Service orchestrates retrieval. Every failure on the vector path is
// absorbed into a lexical fallback, so Answer never returns an error.
type Service struct {
	faqs       FAQSource
	vectors    VectorSearcher
	embed      Embedder
	translator Translator
	logger     *zap.Logger
}

// New creates an ask service. translator can be nil to disable translation.
func New(faqs FAQSource, vectors VectorSearcher, embed Embedder, translator Translator, logger *zap.Logger) *Service {
	return &Service{
		faqs:       faqs,
		vectors:    vectors,
		embed:      embed,
		translator: translator,
		logger:     logger,
	}
}

// Answer resolves a query to the best available answer. The vector path is
// tried first; any failure there degrades silently to lexical matching
// against the in-memory collection.
func (s *Service) Answer(ctx context.Context, query domain.Query) domain.Answer {
	answer, ok := s.lookupNearest(ctx, query)
	if !ok {
		answer = s.lookupLexical(query)
	}

	metrics.AnswersTotal.WithLabelValues(string(answer.Source)).Inc()

	answer.Text = s.translated(ctx, answer.Text, query.Language)
	return answer
}

// lookupNearest embeds the question and asks the vector index for the
// closest stored FAQ. ok=false means the caller should fall back.
func (s *Service) lookupNearest(ctx context.Context, query domain.Query) (domain.Answer, bool) {
	result, err := s.embed.Embed(ctx, query.Text)
	if err != nil {
		s.logger.Warn("Embedding failed, falling back to lexical matching", zap.Error(err))
		metrics.VectorFallbacksTotal.WithLabelValues("embed").Inc()
		return domain.Answer{}, false
	}

	lookup, err := s.vectors.Nearest(ctx, result.Embedding)
	if err != nil {
		s.logger.Warn("Vector search failed, falling back to lexical matching", zap.Error(err))
		metrics.VectorFallbacksTotal.WithLabelValues("search").Inc()
		return domain.Answer{}, false
	}
	if !lookup.Found {
		metrics.VectorFallbacksTotal.WithLabelValues("empty").Inc()
		return domain.Answer{}, false
	}

	s.logger.Debug("Vector hit", zap.Float64("score", lookup.Score))
	return domain.Answer{Text: lookup.Answer, Source: domain.SourceVector}, true
}

func (s *Service) lookupLexical(query domain.Query) domain.Answer {
	matches := match.Rank(query.Text, s.faqs.Snapshot(), match.DefaultTopMatches)
	text := match.Synthesize(matches)

	source := domain.SourceLexical
	if text == match.NoMatchMessage {
		source = domain.SourceNone
	}
	return domain.Answer{Text: text, Source: source}
}

// translated returns the answer in the requested language. English answers
// pass through untouched; a translation failure returns the original text.
func (s *Service) translated(ctx context.Context, text, language string) string {
	if language == domain.DefaultLanguage || s.translator == nil {
		return text
	}

	out, err := s.translator.Translate(ctx, text, language)
	if err != nil {
		s.logger.Warn("Translation failed, returning untranslated answer",
			zap.String("language", language), zap.Error(err))
		metrics.TranslationRequestsTotal.WithLabelValues("error").Inc()
		return text
	}

	metrics.TranslationRequestsTotal.WithLabelValues("ok").Inc()
	return out
}
