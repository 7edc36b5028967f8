// Package csvfile loads a document corpus from a CSV file. The first row
// is treated as a header and the configured title and description columns
// are mapped into domain records.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

// Loader reads corpus records from a CSV file.
type Loader struct {
	path              string
	titleColumn       string
	descriptionColumn string
}

// NewLoader creates a corpus loader for the given file. Column names default
// to "title" and "description" when empty.
func NewLoader(path, titleColumn, descriptionColumn string) *Loader {
	if titleColumn == "" {
		titleColumn = "title"
	}
	if descriptionColumn == "" {
		descriptionColumn = "description"
	}
	return &Loader{
		path:              path,
		titleColumn:       titleColumn,
		descriptionColumn: descriptionColumn,
	}
}

// Load reads all corpus records. Rows with an empty title are skipped with
// a warning. A missing description cell yields an empty description.
func (l *Loader) Load(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening corpus file: %w", domain.ErrIngestion, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Ragged rows are tolerated.

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading corpus header: %w", domain.ErrIngestion, err)
	}

	titleIdx, descIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case l.titleColumn:
			titleIdx = i
		case l.descriptionColumn:
			descIdx = i
		}
	}
	if titleIdx < 0 {
		return nil, fmt.Errorf("%w: corpus is missing column %q", domain.ErrIngestion, l.titleColumn)
	}
	if descIdx < 0 {
		return nil, fmt.Errorf("%w: corpus is missing column %q", domain.ErrIngestion, l.descriptionColumn)
	}

	var records []domain.Record
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading corpus row %d: %w", domain.ErrIngestion, i, err)
		}

		record := domain.Record{Index: len(records)}
		if titleIdx < len(row) {
			record.Title = strings.TrimSpace(row[titleIdx])
		}
		if descIdx < len(row) {
			record.Description = row[descIdx]
		}

		if record.Title == "" {
			logger.Warn("Skipping corpus row %d: empty %s", i, l.titleColumn)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
