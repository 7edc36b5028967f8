package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	Query string `json:"query" jsonschema:"the question or topic to find passages for"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Passages []PassageOutput `json:"passages"`
	Count    int             `json:"count"`
}

// PassageOutput represents a single retrieved passage.
type PassageOutput struct {
	ChunkID    string  `json:"chunk_id"`
	Title      string  `json:"title"`
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed corpus"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer   string          `json:"answer"`
	Passages []PassageOutput `json:"passages"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "retrieve",
		Description: "Retrieve the corpus passages most relevant to a query",
	}, s.handleRetrieve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using only the indexed corpus",
	}, s.handleAsk)
}

// handleRetrieve handles the retrieve tool invocation.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	passages, err := s.ports.Retriever.Retrieve(ctx, input.Query)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Passages: make([]PassageOutput, len(passages)),
		Count:    len(passages),
	}
	for i := range passages {
		output.Passages[i] = PassageOutput{
			ChunkID:    passages[i].ID,
			Title:      passages[i].Metadata.Title,
			Text:       passages[i].Text,
			Similarity: passages[i].Similarity,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Answer.Answer(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:   answer.Text,
		Passages: make([]PassageOutput, len(answer.Passages)),
	}
	for i := range answer.Passages {
		output.Passages[i] = PassageOutput{
			ChunkID:    answer.Passages[i].ID,
			Title:      answer.Passages[i].Metadata.Title,
			Text:       answer.Passages[i].Text,
			Similarity: answer.Passages[i].Similarity,
		}
	}

	return nil, output, nil
}
