package driven

import (
	"context"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// CorpusLoader reads the source corpus into records.
// Missing cells become empty strings; rows without a title are dropped.
type CorpusLoader interface {
	// Load reads all records. An unreadable corpus is a configuration
	// error; individual malformed rows are skipped.
	Load(ctx context.Context) ([]domain.Record, error)
}
