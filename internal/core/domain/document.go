package domain

// Record is a single row of the source corpus.
// Records are immutable once loaded; everything downstream is derived from them.
type Record struct {
	// Index is the zero-based row position within the corpus.
	Index int

	// Title is the record heading. Never empty for a valid record.
	Title string

	// Description is the free-text body. May be empty.
	Description string
}

// ChunkMetadata carries the fixed metadata fields persisted with each chunk.
type ChunkMetadata struct {
	// Title is the originating record's title.
	Title string

	// RowIndex is the originating record's corpus row.
	RowIndex int

	// Source tags the corpus the chunk came from.
	Source string
}

// Chunk is a bounded segment of a record's rendered text.
// It is the atomic unit of indexing and retrieval.
type Chunk struct {
	// ID is derived from record and chunk positions ("{row}_{n}").
	// It is stable across runs, so re-ingesting the same corpus
	// overwrites entries instead of duplicating them.
	ID string

	// Text is a contiguous substring of the rendered record.
	Text string

	// Metadata describes the chunk's origin.
	Metadata ChunkMetadata
}

// IndexEntry is the persisted form of a chunk: the chunk plus its embedding,
// keyed by the chunk id. Entries are created at ingest and read-only after.
type IndexEntry struct {
	Chunk

	// Embedding is the vector representation of Text.
	Embedding []float32
}
