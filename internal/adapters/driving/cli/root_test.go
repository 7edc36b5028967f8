package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
)

// stubServices returns canned results for every command.
type stubServices struct {
	report    driving.IngestReport
	ingestErr error
	answer    domain.Answer
	answerErr error
}

func (s *stubServices) EnsureIngested(context.Context) (driving.IngestReport, error) {
	return s.report, s.ingestErr
}

func (s *stubServices) Answer(context.Context, string) (domain.Answer, error) {
	return s.answer, s.answerErr
}

func (s *stubServices) Retrieve(context.Context, string) ([]domain.RetrievedPassage, error) {
	return s.answer.Passages, nil
}

// setupTestServices installs a builder serving the stub and returns it with
// a cleanup function.
func setupTestServices() (*stubServices, func()) {
	stub := &stubServices{}
	SetBuilder(func(BuildOptions) (*Services, error) {
		return &Services{
			Settings:   domain.DefaultSettings(),
			ConfigPath: "/tmp/docqa/config.toml",
			IndexPath:  "/tmp/docqa/data/document_store.db",
			IndexCount: func() (int, error) { return 42, nil },
			Ingest:     stub,
			Retriever:  stub,
			Answer:     stub,
			Close:      func() {},
		}, nil
	})
	return stub, func() { SetBuilder(nil) }
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
