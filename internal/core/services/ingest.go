package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docqa-cli/internal/chunker"
	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService performs the one-time batch load of the corpus into the
// vector index.
type IngestService struct {
	corpus   driven.CorpusLoader
	splitter *chunker.Splitter
	embedder driven.EmbeddingService
	index    driven.VectorIndex
	limiter  *rate.Limiter
}

// NewIngestService creates an ingest service. EmbedRate limits embedding
// requests per second; zero or negative means unlimited.
func NewIngestService(
	corpus driven.CorpusLoader,
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	cfg domain.IngestSettings,
) *IngestService {
	limit := rate.Inf
	if cfg.EmbedRate > 0 {
		limit = rate.Limit(cfg.EmbedRate)
	}
	return &IngestService{
		corpus:   corpus,
		splitter: splitter,
		embedder: embedder,
		index:    index,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// EnsureIngested loads, chunks, embeds and stores the corpus if the index
// is empty. A populated index is left untouched; there is no change
// detection. A record whose embedding fails is logged and dropped; a single
// entry whose storage fails is logged and skipped while the record's
// remaining entries are still stored. The run continues with the rest.
func (s *IngestService) EnsureIngested(ctx context.Context) (driving.IngestReport, error) {
	logger.Section("Ingest")

	count, err := s.index.Count(ctx)
	if err != nil {
		// An unreadable count is treated as an empty index so a fresh
		// database still gets populated.
		logger.Warn("Could not read index count, assuming empty: %v", err)
		count = 0
	}
	if count > 0 {
		logger.Info("Index already holds %d chunks, skipping ingest", count)
		return driving.IngestReport{Skipped: true}, nil
	}

	records, err := s.corpus.Load(ctx)
	if err != nil {
		return driving.IngestReport{}, err
	}
	logger.Info("Loaded %d corpus records", len(records))

	var report driving.IngestReport
	for _, record := range records {
		chunks := s.splitter.Split(record)

		stored, err := s.ingestRecord(ctx, record, chunks)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			logger.Warn("Dropping record %d (%s): %v", record.Index, record.Title, err)
			report.Failed++
			continue
		}

		report.Records++
		report.Chunks += stored
	}

	if report.Records == 0 && report.Failed > 0 {
		return report, fmt.Errorf("%w: all %d records failed", domain.ErrIngestion, report.Failed)
	}

	logger.Info("Ingested %d records as %d chunks (%d failed)",
		report.Records, report.Chunks, report.Failed)
	return report, nil
}

// ingestRecord embeds and stores the chunks of one record, returning the
// number of entries stored. A failed upsert is logged and skipped; the
// record fails only when embedding fails or no entry could be stored.
func (s *IngestService) ingestRecord(ctx context.Context, record domain.Record, chunks []domain.Chunk) (int, error) {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("%w: embedding record %d: %w", domain.ErrIngestion, record.Index, err)
	}
	if len(embeddings) != len(chunks) {
		return 0, fmt.Errorf("%w: embedding record %d: got %d embeddings for %d chunks",
			domain.ErrIngestion, record.Index, len(embeddings), len(chunks))
	}

	stored := 0
	for i, chunk := range chunks {
		entry := domain.IndexEntry{Chunk: chunk, Embedding: embeddings[i]}
		if err := s.index.Upsert(ctx, entry); err != nil {
			if ctx.Err() != nil {
				return stored, ctx.Err()
			}
			logger.Warn("Skipping chunk %s: %v", chunk.ID, err)
			continue
		}
		stored++
	}

	if stored == 0 && len(chunks) > 0 {
		return 0, fmt.Errorf("%w: no chunks of record %d could be stored", domain.ErrIngestion, record.Index)
	}
	return stored, nil
}
