// Package memory provides in-memory store implementations, primarily for tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/vecmath"
)

// Ensure IndexStore implements the interface.
var _ driven.VectorIndex = (*IndexStore)(nil)

// IndexStore is an in-memory implementation of driven.VectorIndex.
type IndexStore struct {
	mu      sync.RWMutex
	entries map[string]domain.IndexEntry
}

// NewIndexStore creates a new in-memory vector index.
func NewIndexStore() *IndexStore {
	return &IndexStore{
		entries: make(map[string]domain.IndexEntry),
	}
}

// Count returns the number of stored chunks.
func (s *IndexStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Upsert stores an embedded chunk, replacing any existing entry with the same ID.
func (s *IndexStore) Upsert(_ context.Context, entry domain.IndexEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: entry ID is required", domain.ErrInvalidInput)
	}
	if len(entry.Embedding) == 0 {
		return fmt.Errorf("%w: entry embedding is required", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry
	return nil
}

// Candidates returns the fetchK stored chunks most similar to the query
// vector, ordered by descending cosine similarity.
func (s *IndexStore) Candidates(_ context.Context, query []float32, fetchK int) ([]driven.Candidate, error) {
	if fetchK <= 0 {
		return nil, fmt.Errorf("%w: fetchK must be positive", domain.ErrInvalidInput)
	}

	queryMag := vecmath.Magnitude(query)
	if queryMag == 0 {
		return nil, fmt.Errorf("%w: query embedding has zero magnitude", domain.ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]driven.Candidate, 0, len(s.entries))
	for _, entry := range s.entries {
		mag := vecmath.Magnitude(entry.Embedding)
		if mag == 0 {
			continue
		}
		candidates = append(candidates, driven.Candidate{
			Entry:      entry,
			Similarity: vecmath.CosineWithMagnitudes(query, queryMag, entry.Embedding, mag),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		return candidates[i].Entry.ID < candidates[j].Entry.ID
	})
	if len(candidates) > fetchK {
		candidates = candidates[:fetchK]
	}
	return candidates, nil
}

// Close is a no-op for the in-memory index.
func (s *IndexStore) Close() error {
	return nil
}
