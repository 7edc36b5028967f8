package mcp

import (
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retriever serves the retrieve tool.
	Retriever driving.Retriever

	// Answer serves the ask tool.
	Answer driving.AnswerService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Retriever == nil {
		return ErrMissingRetriever
	}
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	return nil
}
