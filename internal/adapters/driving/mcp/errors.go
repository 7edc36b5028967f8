// Package mcp provides a Model Context Protocol server adapter so AI
// assistants can retrieve passages from and ask questions of the local
// document index.
package mcp

import "errors"

// ErrMissingRetriever is returned when the retriever port is not provided.
var ErrMissingRetriever = errors.New("mcp: retriever is required")

// ErrMissingAnswerService is returned when the answer service port is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")
