package domain

import "fmt"

const unknownDescription = "Unknown"

// AIProvider identifies an AI service provider for embeddings or generation.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings configures the embedding provider.
type EmbeddingSettings struct {
	// Provider selects the embedding backend.
	Provider AIProvider `toml:"provider"`

	// Model is the embedding model name.
	Model string `toml:"model"`

	// BaseURL is the service endpoint (Ollama only).
	BaseURL string `toml:"base_url"`

	// APIKey authenticates cloud providers.
	APIKey string `toml:"api_key"`

	// TimeoutSeconds bounds a single embedding request.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Validate checks the embedding settings are usable.
func (s EmbeddingSettings) Validate() error {
	if !s.Provider.IsValid() {
		return fmt.Errorf("%w: unknown embedding provider %q", ErrConfiguration, s.Provider)
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return fmt.Errorf("%w: embedding provider %s requires an API key", ErrConfiguration, s.Provider)
	}
	return nil
}

// LLMSettings configures the language model provider.
type LLMSettings struct {
	// Provider selects the LLM backend.
	Provider AIProvider `toml:"provider"`

	// Model is the LLM model name.
	Model string `toml:"model"`

	// BaseURL is the service endpoint (Ollama only).
	BaseURL string `toml:"base_url"`

	// APIKey authenticates cloud providers.
	APIKey string `toml:"api_key"`

	// TimeoutSeconds bounds a single generation request.
	// Generation latency dominates the pipeline, so this defaults high.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Validate checks the LLM settings are usable.
func (s LLMSettings) Validate() error {
	if !s.Provider.IsValid() {
		return fmt.Errorf("%w: unknown LLM provider %q", ErrConfiguration, s.Provider)
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return fmt.Errorf("%w: LLM provider %s requires an API key", ErrConfiguration, s.Provider)
	}
	return nil
}

// RetrievalSettings configures passage selection.
type RetrievalSettings struct {
	// TopK is the number of passages returned per query.
	TopK int `toml:"top_k"`

	// FetchK is the candidate pool size fetched before diversity
	// filtering. Must be at least TopK.
	FetchK int `toml:"fetch_k"`

	// Lambda is the relevance/diversity trade-off in [0, 1].
	// 1 ranks purely by relevance; 0 purely penalises redundancy.
	Lambda float64 `toml:"lambda"`
}

// Validate checks the retrieval settings are usable.
func (s RetrievalSettings) Validate() error {
	if s.TopK <= 0 {
		return fmt.Errorf("%w: top_k must be positive, got %d", ErrConfiguration, s.TopK)
	}
	if s.FetchK < s.TopK {
		return fmt.Errorf("%w: fetch_k %d must be at least top_k %d", ErrConfiguration, s.FetchK, s.TopK)
	}
	if s.Lambda < 0 || s.Lambda > 1 {
		return fmt.Errorf("%w: lambda must be within [0, 1], got %g", ErrConfiguration, s.Lambda)
	}
	return nil
}

// ChunkingSettings configures how records are split.
type ChunkingSettings struct {
	// Size is the maximum chunk length in characters, bounded by the
	// embedding model's input limit.
	Size int `toml:"size"`

	// Overlap is the number of characters shared between consecutive
	// chunks of one record.
	Overlap int `toml:"overlap"`
}

// Validate checks the chunking settings are usable.
func (s ChunkingSettings) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrConfiguration, s.Size)
	}
	if s.Overlap < 0 || s.Overlap >= s.Size {
		return fmt.Errorf("%w: chunk overlap %d must be within [0, size)", ErrConfiguration, s.Overlap)
	}
	return nil
}

// StorageSettings configures the persisted vector index.
type StorageSettings struct {
	// DataDir is the directory holding the index database.
	// Empty means the default under the user's home directory.
	DataDir string `toml:"data_dir"`

	// Collection names the index collection within the data directory.
	Collection string `toml:"collection"`
}

// Validate checks the storage settings are usable.
func (s StorageSettings) Validate() error {
	if s.Collection == "" {
		return fmt.Errorf("%w: collection name must not be empty", ErrConfiguration)
	}
	return nil
}

// CorpusSettings configures the source corpus.
type CorpusSettings struct {
	// Path is the corpus file location. May be overridden per ingest run.
	Path string `toml:"path"`

	// Source is the tag recorded in every chunk's metadata.
	Source string `toml:"source"`

	// TitleColumn and DescriptionColumn name the corpus columns.
	TitleColumn       string `toml:"title_column"`
	DescriptionColumn string `toml:"description_column"`
}

// IngestSettings configures the one-time batch load.
type IngestSettings struct {
	// EmbedRate limits embedding requests per second during ingest,
	// protecting a local inference server from saturation.
	EmbedRate float64 `toml:"embed_rate"`
}

// Settings aggregates all configuration for the pipeline.
type Settings struct {
	Corpus    CorpusSettings    `toml:"corpus"`
	Storage   StorageSettings   `toml:"storage"`
	Chunking  ChunkingSettings  `toml:"chunking"`
	Embedding EmbeddingSettings `toml:"embedding"`
	LLM       LLMSettings       `toml:"llm"`
	Retrieval RetrievalSettings `toml:"retrieval"`
	Ingest    IngestSettings    `toml:"ingest"`
}

// Validate checks all settings sections.
func (s Settings) Validate() error {
	if err := s.Storage.Validate(); err != nil {
		return err
	}
	if err := s.Chunking.Validate(); err != nil {
		return err
	}
	if err := s.Embedding.Validate(); err != nil {
		return err
	}
	if err := s.LLM.Validate(); err != nil {
		return err
	}
	return s.Retrieval.Validate()
}

// DefaultSettings returns the baseline configuration: a local Ollama
// instance, the document_store collection, and the retrieval parameters
// the pipeline was tuned with.
func DefaultSettings() Settings {
	return Settings{
		Corpus: CorpusSettings{
			Source:            "document_corpus",
			TitleColumn:       "title",
			DescriptionColumn: "description",
		},
		Storage: StorageSettings{
			Collection: "document_store",
		},
		Chunking: ChunkingSettings{
			Size:    500,
			Overlap: 50,
		},
		Embedding: EmbeddingSettings{
			Provider:       AIProviderOllama,
			Model:          "mxbai-embed-large",
			TimeoutSeconds: 30,
		},
		LLM: LLMSettings{
			Provider:       AIProviderOllama,
			Model:          "gemma3",
			TimeoutSeconds: 120,
		},
		Retrieval: RetrievalSettings{
			TopK:   8,
			FetchK: 25,
			Lambda: 0.7,
		},
		Ingest: IngestSettings{
			EmbedRate: 10,
		},
	}
}
