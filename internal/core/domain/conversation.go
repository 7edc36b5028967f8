package domain

import "time"

// Role identifies the author of a conversation turn.
type Role string

// Conversation roles.
const (
	// RoleUser is a question submitted by the user.
	RoleUser Role = "user"

	// RoleAssistant is an answer produced by the system.
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// ConversationTurn is one entry of a session transcript. The transcript is
// append-only, exists for display, and never feeds back into retrieval.
type ConversationTurn struct {
	// ID uniquely identifies the turn.
	ID string

	// Role is who authored the turn.
	Role Role

	// Content is the question or answer text.
	Content string

	// CreatedAt is when the turn was recorded.
	CreatedAt time.Time
}
