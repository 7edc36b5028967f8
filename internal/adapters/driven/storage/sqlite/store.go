package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docqa-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/vecmath"
)

// DefaultCollection is the database name used when none is configured.
const DefaultCollection = "document_store"

var _ driven.VectorIndex = (*Store)(nil)

// Store is a SQLite-backed vector index. Each collection lives in its
// own database file under the data directory.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the vector index for a collection.
// If dataDir is empty, defaults to ~/.docqa/data.
func NewStore(dataDir, collection string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docqa", "data")
	}
	if collection == "" {
		collection = DefaultCollection
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, collection+".db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies any pending .up.sql migrations from the embedded FS.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// Count returns the number of stored chunks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// Upsert stores an embedded chunk, replacing any existing row with the same ID.
func (s *Store) Upsert(ctx context.Context, entry domain.IndexEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: entry ID is required", domain.ErrInvalidInput)
	}
	if len(entry.Embedding) == 0 {
		return fmt.Errorf("%w: entry embedding is required", domain.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chunks (id, title, row_index, source, content, embedding)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			row_index = excluded.row_index,
			source = excluded.source,
			content = excluded.content,
			embedding = excluded.embedding
	`, entry.ID, entry.Metadata.Title, entry.Metadata.RowIndex, entry.Metadata.Source,
		entry.Text, float32SliceToBytes(entry.Embedding))
	if err != nil {
		return fmt.Errorf("upserting chunk %s: %w", entry.ID, err)
	}
	return nil
}

// Candidates returns the fetchK stored chunks most similar to the query
// vector, ordered by descending cosine similarity. Chunks whose embedding
// has zero magnitude are skipped.
func (s *Store) Candidates(ctx context.Context, query []float32, fetchK int) ([]driven.Candidate, error) {
	if fetchK <= 0 {
		return nil, fmt.Errorf("%w: fetchK must be positive", domain.ErrInvalidInput)
	}

	queryMag := vecmath.Magnitude(query)
	if queryMag == 0 {
		return nil, fmt.Errorf("%w: query embedding has zero magnitude", domain.ErrInvalidInput)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, row_index, source, content, embedding FROM chunks")
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var candidates []driven.Candidate
	for rows.Next() {
		var entry domain.IndexEntry
		var blob []byte
		if err := rows.Scan(&entry.ID, &entry.Metadata.Title, &entry.Metadata.RowIndex,
			&entry.Metadata.Source, &entry.Text, &blob); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		entry.Embedding = bytesToFloat32Slice(blob)

		mag := vecmath.Magnitude(entry.Embedding)
		if mag == 0 {
			continue
		}

		candidates = append(candidates, driven.Candidate{
			Entry:      entry,
			Similarity: vecmath.CosineWithMagnitudes(query, queryMag, entry.Embedding, mag),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})
	if len(candidates) > fetchK {
		candidates = candidates[:fetchK]
	}
	return candidates, nil
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
