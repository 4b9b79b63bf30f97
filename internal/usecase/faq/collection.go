package faq

import (
	"sync"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

// Collection is the in-memory FAQ set used by lexical matching. Readers get
// an immutable snapshot; writers append or replace under the write lock.
type Collection struct {
	mu      sync.RWMutex
	entries []domain.FaqEntry
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Snapshot returns a copy of the current entries. The copy is safe to score
// and rank without holding any lock.
func (c *Collection) Snapshot() []domain.FaqEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.FaqEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Append adds one entry.
func (c *Collection) Append(entry domain.FaqEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

// Upsert replaces the entry with the same ID, or appends if absent.
func (c *Collection) Upsert(entry domain.FaqEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ID == entry.ID {
			c.entries[i] = entry
			return
		}
	}
	c.entries = append(c.entries, entry)
}

// Remove deletes the entry with the given ID, reporting whether it was present.
func (c *Collection) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the whole entry set, used during warm-up.
func (c *Collection) Replace(entries []domain.FaqEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
