package tui

import (
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Session answers questions and keeps the transcript.
	Session driving.Conversation
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
