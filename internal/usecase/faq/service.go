// Package faq manages the FAQ knowledge base: persistence, the in-memory
// collection used for lexical matching, and vector indexing of questions.
package faq

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

// Service coordinates FAQ writes across the store, the in-memory collection,
// and the vector index.
type Service struct {
	repo    Repository
	indexer VectorIndexer
	embed   Embedder
	coll    *Collection
	logger  *zap.Logger
}

// New creates an FAQ service.
func New(repo Repository, indexer VectorIndexer, embed Embedder, coll *Collection, logger *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		indexer: indexer,
		embed:   embed,
		coll:    coll,
		logger:  logger,
	}
}

// Add validates, persists, and indexes a new FAQ. Persistence failures abort
// the add; a vector indexing failure does not, since the entry is already
// reachable through lexical matching and warm-up retries indexing later.
// Re-adding an existing question updates its answer in place; the question
// is unchanged, so the stored vector still applies and no re-embed happens.
func (s *Service) Add(ctx context.Context, question, answer string) (domain.FaqEntry, error) {
	entry, err := domain.NewFaqEntry(question, answer)
	if err != nil {
		return domain.FaqEntry{}, err
	}

	exists, err := s.repo.Exists(ctx, entry.ID)
	if err != nil {
		return domain.FaqEntry{}, fmt.Errorf("check faq: %w", err)
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return domain.FaqEntry{}, fmt.Errorf("save faq: %w", err)
	}

	if exists {
		s.coll.Upsert(entry)
		s.logger.Info("FAQ answer updated", zap.String("id", entry.ID))
		return entry, nil
	}

	s.coll.Append(entry)
	s.indexEntry(ctx, entry)

	s.logger.Info("FAQ added",
		zap.String("id", entry.ID),
		zap.Int("collection_size", s.coll.Len()),
	)
	return entry, nil
}

// Remove deletes an FAQ from the store and the in-memory collection. The
// vector index entry disappears with the hash, since the embedding is a
// field on the same key.
func (s *Service) Remove(ctx context.Context, id string) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check faq: %w", err)
	}
	if !exists {
		return domain.ErrFAQNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	s.coll.Remove(id)

	s.logger.Info("FAQ removed",
		zap.String("id", id),
		zap.Int("collection_size", s.coll.Len()),
	)
	return nil
}

// Warm loads the knowledge base on startup: ensures the vector index exists,
// fills the in-memory collection, and backfills embeddings for entries that
// were saved while the vector side was unavailable.
func (s *Service) Warm(ctx context.Context) error {
	if err := s.indexer.EnsureIndex(ctx); err != nil {
		// Lexical matching works without the index; vector lookups will
		// fall back until it comes up.
		s.logger.Warn("Vector index unavailable", zap.Error(err))
	}

	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load faqs: %w", err)
	}

	entries := make([]domain.FaqEntry, 0, len(records))
	reindexed := 0
	for _, rec := range records {
		entries = append(entries, rec.Entry)
		if !rec.Indexed {
			s.indexEntry(ctx, rec.Entry)
			reindexed++
		}
	}
	s.coll.Replace(entries)

	s.logger.Info("FAQ collection warmed",
		zap.Int("entries", len(entries)),
		zap.Int("reindexed", reindexed),
	)
	return nil
}

// Snapshot exposes the current collection for lexical matching.
func (s *Service) Snapshot() []domain.FaqEntry {
	return s.coll.Snapshot()
}

// indexEntry embeds the question and writes the vector, best effort.
func (s *Service) indexEntry(ctx context.Context, entry domain.FaqEntry) {
	result, err := s.embed.Embed(ctx, entry.Question)
	if err != nil {
		s.logger.Warn("Failed to embed faq question",
			zap.String("id", entry.ID), zap.Error(err))
		return
	}

	if err := s.indexer.Index(ctx, entry.ID, result.Embedding); err != nil {
		s.logger.Warn("Failed to index faq vector",
			zap.String("id", entry.ID), zap.Error(err))
	}
}
