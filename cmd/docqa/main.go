// Command docqa answers questions grounded in a local document corpus.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/docqa-cli/internal/adapters/driven/ai"
	configfile "github.com/custodia-labs/docqa-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docqa-cli/internal/adapters/driven/corpus/csvfile"
	"github.com/custodia-labs/docqa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docqa-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/docqa-cli/internal/chunker"
	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/services"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetBuilder(buildServices)

	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires adapters and services for one command invocation.
func buildServices(opts cli.BuildOptions) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	settings, err := configStore.Settings()
	if err != nil {
		return nil, err
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = settings.Storage.DataDir
	}

	store, err := sqlite.NewStore(dataDir, settings.Storage.Collection)
	if err != nil {
		return nil, err
	}

	closers := []func(){func() { store.Close() }}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	svc := &cli.Services{
		Settings:   settings,
		ConfigPath: configStore.Path(),
		IndexPath:  store.Path(),
		IndexCount: func() (int, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return store.Count(ctx)
		},
		Close: func() { closeAll() },
	}

	if !opts.NeedIngest && !opts.NeedAnswer {
		return svc, nil
	}

	embedder, err := ai.CreateAndValidateEmbeddingService(settings.Embedding)
	if err != nil {
		closeAll()
		return nil, err
	}
	closers = append(closers, func() { embedder.Close() })

	if opts.NeedIngest {
		corpusPath := opts.CorpusPath
		if corpusPath == "" {
			corpusPath = settings.Corpus.Path
		}
		if corpusPath == "" {
			closeAll()
			return nil, fmt.Errorf("%w: no corpus path, set [corpus] path or pass --corpus",
				domain.ErrConfiguration)
		}

		loader := csvfile.NewLoader(corpusPath, settings.Corpus.TitleColumn, settings.Corpus.DescriptionColumn)
		splitter := chunker.New(
			chunker.WithSize(settings.Chunking.Size),
			chunker.WithOverlap(settings.Chunking.Overlap),
			chunker.WithSource(settings.Corpus.Source),
		)
		svc.Ingest = services.NewIngestService(loader, splitter, embedder, store, settings.Ingest)
	}

	if opts.NeedAnswer {
		llm, err := ai.CreateAndValidateLLMService(settings.LLM)
		if err != nil {
			closeAll()
			return nil, err
		}
		closers = append(closers, func() { llm.Close() })

		retriever := services.NewRetrievalService(embedder, store, settings.Retrieval)
		answerer := services.NewAnswerService(retriever, llm)

		svc.Retriever = retriever
		svc.Answer = answerer
		svc.Session = services.NewConversationService(answerer)
	}

	return svc, nil
}
