package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIngestion indicates a record could not be chunked, embedded or
	// stored during batch load. Recovered per record: the record is logged
	// and skipped, the batch continues.
	ErrIngestion = errors.New("ingestion failed")

	// ErrRetrieval indicates an embedding or index failure at query time.
	// Surfaced to the caller; never silently converted into an empty context.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrSynthesis indicates the language model call failed or returned a
	// malformed response. Surfaced as a failed turn; no automatic retry.
	ErrSynthesis = errors.New("answer synthesis failed")

	// ErrConfiguration indicates a missing or unreachable corpus file,
	// index path or model endpoint at startup. Fatal: the system must not
	// accept queries.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or unreachable.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the language model service is not
	// configured or unreachable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
