package driven

import (
	"context"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// VectorIndex persists index entries keyed by chunk id and serves raw
// nearest-neighbour candidate retrieval. The index owns persisted entries
// exclusively; readers never mutate.
//
// The index stays agnostic to diversity filtering: it returns the top
// candidates by similarity and leaves selection to the retriever.
type VectorIndex interface {
	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Upsert inserts or replaces the entry for its chunk id.
	Upsert(ctx context.Context, entry domain.IndexEntry) error

	// Candidates returns up to fetchK entries nearest to the query vector
	// by cosine similarity, most similar first.
	Candidates(ctx context.Context, query []float32, fetchK int) ([]Candidate, error)

	// Close releases resources.
	Close() error
}

// Candidate is a nearest-neighbour hit with enough information for the
// retriever to run diversity selection without re-reading the index.
type Candidate struct {
	// Entry is the stored chunk and its embedding.
	Entry domain.IndexEntry

	// Similarity is the cosine similarity to the query vector.
	Similarity float64
}
