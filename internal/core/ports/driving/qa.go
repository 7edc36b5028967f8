package driving

import (
	"context"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// IngestReport summarises one ingest run.
type IngestReport struct {
	// Skipped is true when the index was already populated and the run
	// performed no work.
	Skipped bool

	// Records is the number of corpus records processed.
	Records int

	// Chunks is the number of entries written to the index.
	Chunks int

	// Failed is the number of records dropped after an embedding or
	// storage failure.
	Failed int
}

// IngestService loads the corpus into the vector index exactly once.
type IngestService interface {
	// EnsureIngested transitions the index from empty to populated.
	// A non-empty index is left untouched; there is no change detection
	// and no incremental diff.
	EnsureIngested(ctx context.Context) (IngestReport, error)
}

// Retriever returns the passages most relevant to a question, filtered
// for redundancy.
type Retriever interface {
	// Retrieve embeds the query, fetches nearest candidates and selects
	// a bounded, non-redundant subset. Length of the result never exceeds
	// the configured top-k.
	Retrieve(ctx context.Context, query string) ([]domain.RetrievedPassage, error)
}

// Conversation answers questions within a session and keeps its transcript.
type Conversation interface {
	// Ask answers the question and appends the exchange to the
	// transcript. A failed question leaves the transcript unmodified.
	Ask(ctx context.Context, question string) (domain.Answer, error)

	// Transcript returns the session's turns in order.
	Transcript() []domain.ConversationTurn
}

// AnswerService produces a grounded answer to a question.
type AnswerService interface {
	// Answer retrieves passages for the question and synthesises a
	// response constrained to them.
	Answer(ctx context.Context, question string) (domain.Answer, error)
}
