// Package sqlite provides the SQLite-backed vector index. Embeddings are
// stored as little-endian float32 blobs alongside chunk text and metadata,
// and similarity search is a full scan scored in process.
package sqlite
