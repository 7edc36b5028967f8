// Package domain defines the core business entities for docqa.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A row of the source corpus
//   - Chunk: A bounded segment of a record, the unit of retrieval
//   - IndexEntry: A chunk plus its embedding, as persisted
//   - RetrievedPassage: A chunk returned for a query
//   - ConversationTurn: One entry of a session transcript
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
