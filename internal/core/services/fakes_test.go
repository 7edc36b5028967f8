package services

import (
	"context"
	"errors"
	"hash/fnv"
	"strings"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
)

// fakeEmbedder returns fixed vectors per text, falling back to a
// deterministic bag-of-words hash so related texts land near each other.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vectors: make(map[string][]float32)}
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return hashEmbed(text), nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (f *fakeEmbedder) ModelName() string          { return "fake-embedder" }
func (f *fakeEmbedder) Ping(context.Context) error { return nil }
func (f *fakeEmbedder) Close() error               { return nil }

// hashEmbed maps each lowercase token into a fixed-size bucket vector.
// Texts sharing words get a higher cosine similarity.
func hashEmbed(text string) []float32 {
	const dim = 64
	v := make([]float32, dim)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,:;!?\"'()")
		if token == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(token))
		v[h.Sum32()%dim]++
	}
	return v
}

// fakeLLM returns a canned response and records the last prompt.
type fakeLLM struct {
	response string
	err      error
	calls    int
	lastOpts driven.GenerateOptions
	prompt   string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	f.calls++
	f.prompt = prompt
	f.lastOpts = opts
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) ModelName() string          { return "fake-llm" }
func (f *fakeLLM) Ping(context.Context) error { return nil }
func (f *fakeLLM) Close() error               { return nil }

// fakeCorpus serves a fixed record slice.
type fakeCorpus struct {
	records []domain.Record
	err     error
}

func (f *fakeCorpus) Load(context.Context) ([]domain.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// flakyIndex wraps a VectorIndex and injects failures.
type flakyIndex struct {
	driven.VectorIndex
	countErr      error
	candidatesErr error
	upsertErrFor  map[string]error
}

func (f *flakyIndex) Candidates(ctx context.Context, query []float32, fetchK int) ([]driven.Candidate, error) {
	if f.candidatesErr != nil {
		return nil, f.candidatesErr
	}
	return f.VectorIndex.Candidates(ctx, query, fetchK)
}

func (f *flakyIndex) Count(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.VectorIndex.Count(ctx)
}

func (f *flakyIndex) Upsert(ctx context.Context, entry domain.IndexEntry) error {
	if err, ok := f.upsertErrFor[entry.ID]; ok {
		return err
	}
	return f.VectorIndex.Upsert(ctx, entry)
}

var errBoom = errors.New("boom")
