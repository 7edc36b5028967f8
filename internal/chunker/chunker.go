// Package chunker splits corpus records into overlapping text segments
// sized for the embedding model's input limit.
package chunker

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// DefaultSize is the default maximum chunk length in characters,
// kept within the 512-token limit of common embedding models.
const DefaultSize = 500

// DefaultOverlap is the default number of characters shared between
// consecutive chunks, preserving context across a split boundary.
const DefaultOverlap = 50

// separators are tried coarsest first: a segment is cut at the latest
// paragraph break that fits, then line break, then sentence terminator,
// then space. The final empty separator is a hard character cut.
var separators = []string{"\n\n", "\n", ".", " ", ""}

// Splitter produces chunks from records. Chunk ids are deterministic for
// identical input and configuration, which makes ingest keying idempotent.
type Splitter struct {
	size    int
	overlap int
	source  string
}

// Option configures the splitter.
type Option func(*Splitter)

// WithSize sets the maximum chunk length in characters.
func WithSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.size = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// WithSource sets the corpus tag recorded in chunk metadata.
func WithSource(source string) Option {
	return func(s *Splitter) {
		s.source = source
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		size:    DefaultSize,
		overlap: DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't exceed chunk size
	if s.overlap >= s.size {
		s.overlap = s.size / 4
	}

	return s
}

// Render produces the text form of a record that gets chunked and indexed.
func Render(r domain.Record) string {
	return fmt.Sprintf("Title: %s\n\nSection Content:\n%s", r.Title, r.Description)
}

// Split renders the record and cuts it into chunks. Every chunk is a
// contiguous substring of the rendered text; concatenating the chunks in
// order with overlaps removed reconstructs it exactly. A record with an
// empty description still yields one chunk holding the title line.
func (s *Splitter) Split(record domain.Record) []domain.Chunk {
	segments := s.cut([]rune(Render(record)))

	chunks := make([]domain.Chunk, len(segments))
	for j, segment := range segments {
		chunks[j] = domain.Chunk{
			ID:   fmt.Sprintf("%d_%d", record.Index, j),
			Text: segment,
			Metadata: domain.ChunkMetadata{
				Title:    record.Title,
				RowIndex: record.Index,
				Source:   s.source,
			},
		}
	}
	return chunks
}

// cut walks the text producing segments of at most size runes. Each
// non-final cut lands on the coarsest separator available inside the
// window; the next segment starts overlap runes before the cut.
func (s *Splitter) cut(text []rune) []string {
	if len(text) <= s.size {
		return []string{string(text)}
	}

	var segments []string
	start := 0
	for {
		end := start + s.size
		if end >= len(text) {
			segments = append(segments, string(text[start:]))
			return segments
		}
		cut := s.boundary(text, start, end)
		segments = append(segments, string(text[start:cut]))
		start = cut - s.overlap
	}
}

// boundary picks the cut position in (start+overlap, end]. Separators are
// tried in priority order; finer ones apply only where no coarser boundary
// exists in the window. Falls back to a hard cut at end, which also keeps
// the walk progressing past the overlap.
func (s *Splitter) boundary(text []rune, start, end int) int {
	min := start + s.overlap + 1
	if min >= end {
		return end
	}
	window := string(text[min:end])
	for _, sep := range separators {
		if sep == "" {
			break
		}
		if idx := strings.LastIndex(window, sep); idx >= 0 {
			return min + len([]rune(window[:idx])) + len([]rune(sep))
		}
	}
	return end
}
