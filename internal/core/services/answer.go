package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

// RefusalAnswer is the exact sentence the model is instructed to return
// when the retrieved passages cannot answer the question.
const RefusalAnswer = "The data does not contain this information."

// answerPrompt constrains the model to the retrieved records. The refusal
// sentence must match RefusalAnswer verbatim.
const answerPrompt = `You are an assistant that answers questions using only the provided records.

Rules:
1. Base your answer strictly on the records below.
2. Do not use outside knowledge and do not make assumptions.
3. If the records do not contain the information needed to answer, reply with exactly: "The data does not contain this information."

Records:
%s

Question: %s

Answer:`

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// AnswerService synthesises answers grounded in retrieved passages.
type AnswerService struct {
	retriever driving.Retriever
	llm       driven.LLMService
}

// NewAnswerService creates an answer service.
func NewAnswerService(retriever driving.Retriever, llm driven.LLMService) *AnswerService {
	return &AnswerService{
		retriever: retriever,
		llm:       llm,
	}
}

// Answer retrieves passages for the question and asks the model for a
// response constrained to them. A retrieval failure is returned as-is and
// the model is never called. On success the model is invoked exactly once,
// even when no passages were retrieved, and its output is returned
// unmodified; the prompt rules make the model refuse over an empty record
// block.
func (s *AnswerService) Answer(ctx context.Context, question string) (domain.Answer, error) {
	passages, err := s.retriever.Retrieve(ctx, question)
	if err != nil {
		return domain.Answer{}, err
	}

	prompt := fmt.Sprintf(answerPrompt, formatPassages(passages), strings.TrimSpace(question))
	logger.Section("Synthesis")
	logger.Debug("Prompting %s with %d passages", s.llm.ModelName(), len(passages))

	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("%w: generating answer: %w", domain.ErrSynthesis, err)
	}

	return domain.Answer{
		Text:     text,
		Passages: passages,
	}, nil
}

// formatPassages renders passages into the prompt's record block.
func formatPassages(passages []domain.RetrievedPassage) string {
	parts := make([]string, len(passages))
	for i, p := range passages {
		parts[i] = fmt.Sprintf("Title: %s\nDescription: %s", p.Metadata.Title, p.Text)
	}
	return strings.Join(parts, "\n\n")
}
