package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docqa-cli/internal/logger"
	"github.com/custodia-labs/docqa-cli/internal/vecmath"
)

// Ensure RetrievalService implements the interface.
var _ driving.Retriever = (*RetrievalService)(nil)

// RetrievalService selects relevant, non-redundant passages for a query
// using maximal marginal relevance over the index's nearest candidates.
type RetrievalService struct {
	embedder driven.EmbeddingService
	index    driven.VectorIndex
	cfg      domain.RetrievalSettings
}

// NewRetrievalService creates a retrieval service.
func NewRetrievalService(
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	cfg domain.RetrievalSettings,
) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		index:    index,
		cfg:      cfg,
	}
}

// Retrieve embeds the query, fetches the fetch-k nearest candidates and
// greedily selects up to top-k of them by marginal relevance.
func (s *RetrievalService) Retrieve(ctx context.Context, query string) ([]domain.RetrievedPassage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is empty", domain.ErrInvalidInput)
	}

	logger.Section("Retrieval")
	logger.Debug("Query: %q", query)

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding query: %w", domain.ErrRetrieval, err)
	}

	candidates, err := s.index.Candidates(ctx, queryVec, s.cfg.FetchK)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching candidates: %w", domain.ErrRetrieval, err)
	}
	logger.Debug("Fetched %d candidates for top_k=%d", len(candidates), s.cfg.TopK)

	selected := marginalSelect(candidates, s.cfg.TopK, s.cfg.Lambda)

	passages := make([]domain.RetrievedPassage, len(selected))
	for i, c := range selected {
		passages[i] = domain.RetrievedPassage{
			Chunk:      c.Entry.Chunk,
			Similarity: c.Similarity,
		}
		logger.Debug("Passage %d: %s (similarity %.4f)", i, c.Entry.ID, c.Similarity)
	}
	return passages, nil
}

// marginalSelect greedily picks up to k candidates maximising
//
//	lambda*sim(c, query) - (1-lambda)*max sim(c, already picked)
//
// Candidates arrive ordered by query similarity; ties fall to the earlier,
// more similar candidate, which makes selection deterministic.
func marginalSelect(candidates []driven.Candidate, k int, lambda float64) []driven.Candidate {
	if k > len(candidates) {
		k = len(candidates)
	}
	if k <= 0 {
		return nil
	}

	magnitudes := make([]float32, len(candidates))
	for i, c := range candidates {
		magnitudes[i] = vecmath.Magnitude(c.Entry.Embedding)
	}

	selected := make([]int, 0, k)
	picked := make([]bool, len(candidates))

	for len(selected) < k {
		best := -1
		bestScore := math.Inf(-1)

		for i, c := range candidates {
			if picked[i] {
				continue
			}

			score := lambda * c.Similarity
			if len(selected) > 0 {
				redundancy := math.Inf(-1)
				for _, j := range selected {
					sim := vecmath.CosineWithMagnitudes(
						c.Entry.Embedding, magnitudes[i],
						candidates[j].Entry.Embedding, magnitudes[j],
					)
					if sim > redundancy {
						redundancy = sim
					}
				}
				score -= (1 - lambda) * redundancy
			}
			if score > bestScore {
				best = i
				bestScore = score
			}
		}

		if best < 0 {
			break
		}
		picked[best] = true
		selected = append(selected, best)
	}

	result := make([]driven.Candidate, len(selected))
	for i, idx := range selected {
		result[i] = candidates[idx]
	}
	return result
}
