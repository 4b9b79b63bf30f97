// Package faq persists question/answer pairs as Redis hashes.
package faq

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/db"
	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

const (
	questionField = "question"
	answerField   = "answer"
)

// store is the consumer interface for FAQ persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, key string) error
}

// Repo implements usecase/faq.Repository.
type Repo struct {
	store store
}

// New creates an FAQ repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Save writes an entry. The question hash in the key makes the write
// idempotent for identical questions.
func (r *Repo) Save(ctx context.Context, entry domain.FaqEntry) error {
	fields := map[string]string{
		questionField: entry.Question,
		answerField:   entry.Answer,
	}
	if err := r.store.HSet(ctx, faqKey(entry.ID), fields); err != nil {
		return fmt.Errorf("save faq %s: %w", entry.ID, err)
	}
	return nil
}

// Exists reports whether an entry with the given ID is already stored.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.store.Exists(ctx, faqKey(id))
	if err != nil {
		return false, fmt.Errorf("check faq %s: %w", id, err)
	}
	return ok, nil
}

// Delete removes a stored entry together with its vector field.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, faqKey(id)); err != nil {
		return fmt.Errorf("delete faq %s: %w", id, err)
	}
	return nil
}

// LoadAll returns every stored entry in deterministic (key-sorted) order,
// together with whether each one already carries an embedding.
func (r *Repo) LoadAll(ctx context.Context) ([]domain.FaqRecord, error) {
	keys, err := r.store.Scan(ctx, faqKeyPattern())
	if err != nil {
		return nil, fmt.Errorf("scan faq keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load faq hashes: %w", err)
	}

	records := make([]domain.FaqRecord, 0, len(keys))
	for i, fields := range hashes {
		question := fields[questionField]
		answer := fields[answerField]
		if question == "" || answer == "" {
			continue // expired or partially written hash
		}

		_, indexed := fields[db.VectorField]
		records = append(records, domain.FaqRecord{
			Entry:   domain.ReconstructFaqEntry(extractID(keys[i]), question, answer),
			Indexed: indexed,
		})
	}

	return records, nil
}

func faqKey(id string) string {
	return domain.KeyPrefix + "faq:" + id
}

func faqKeyPattern() string {
	return domain.KeyPrefix + "faq:*"
}

func extractID(key string) string {
	return strings.TrimPrefix(key, domain.KeyPrefix+"faq:")
}
