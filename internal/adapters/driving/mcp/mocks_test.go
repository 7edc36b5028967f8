package mcp

import (
	"context"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// mockRetriever implements driving.Retriever for tests.
type mockRetriever struct {
	passages []domain.RetrievedPassage
	err      error
}

func (m *mockRetriever) Retrieve(context.Context, string) ([]domain.RetrievedPassage, error) {
	return m.passages, m.err
}

// mockAnswerService implements driving.AnswerService for tests.
type mockAnswerService struct {
	answer domain.Answer
	err    error
}

func (m *mockAnswerService) Answer(context.Context, string) (domain.Answer, error) {
	return m.answer, m.err
}
