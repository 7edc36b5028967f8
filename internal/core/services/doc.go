// Package services contains the core application services: corpus ingest,
// diversity-aware retrieval, grounded answer synthesis and the chat
// session transcript. Services depend only on port interfaces and carry
// no transport or storage concerns.
package services
