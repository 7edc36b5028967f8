package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
)

// Ensure ConversationService implements the interface.
var _ driving.Conversation = (*ConversationService)(nil)

// ConversationService keeps an in-memory session transcript around an
// answer service. The transcript is append-only, lives for the session
// and never feeds back into retrieval.
type ConversationService struct {
	answerer driving.AnswerService

	mu    sync.Mutex
	turns []domain.ConversationTurn
}

// NewConversationService creates a conversation service.
func NewConversationService(answerer driving.AnswerService) *ConversationService {
	return &ConversationService{answerer: answerer}
}

// Ask answers the question and records the exchange. On failure the
// transcript is left unmodified so a retry does not duplicate turns.
func (s *ConversationService) Ask(ctx context.Context, question string) (domain.Answer, error) {
	answer, err := s.answerer.Answer(ctx, question)
	if err != nil {
		return domain.Answer{}, err
	}

	now := time.Now()
	s.mu.Lock()
	s.turns = append(s.turns,
		domain.ConversationTurn{
			ID:        uuid.NewString(),
			Role:      domain.RoleUser,
			Content:   question,
			CreatedAt: now,
		},
		domain.ConversationTurn{
			ID:        uuid.NewString(),
			Role:      domain.RoleAssistant,
			Content:   answer.Text,
			CreatedAt: now,
		},
	)
	s.mu.Unlock()

	return answer, nil
}

// Transcript returns a copy of the session transcript in order.
func (s *ConversationService) Transcript() []domain.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out
}
