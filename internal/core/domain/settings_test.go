package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAIProvider_IsValid tests all valid and invalid providers
func TestAIProvider_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		provider AIProvider
		expected bool
	}{
		{
			name:     "ollama is valid",
			provider: AIProviderOllama,
			expected: true,
		},
		{
			name:     "openai is valid",
			provider: AIProviderOpenAI,
			expected: true,
		},
		{
			name:     "empty string is invalid",
			provider: AIProvider(""),
			expected: false,
		},
		{
			name:     "unknown provider is invalid",
			provider: AIProvider("anthropic"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.provider.IsValid())
		})
	}
}

// TestAIProvider_RequiresAPIKey tests API key requirements per provider
func TestAIProvider_RequiresAPIKey(t *testing.T) {
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.True(t, AIProviderOpenAI.RequiresAPIKey())
}

// TestAIProvider_Description tests human-readable descriptions
func TestAIProvider_Description(t *testing.T) {
	assert.Equal(t, "Ollama (local)", AIProviderOllama.Description())
	assert.Equal(t, "OpenAI (cloud)", AIProviderOpenAI.Description())
	assert.Equal(t, "Unknown", AIProvider("something").Description())
}

// TestEmbeddingSettings_Validate tests embedding section validation
func TestEmbeddingSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings EmbeddingSettings
		wantErr  bool
	}{
		{
			name:     "ollama without key is valid",
			settings: EmbeddingSettings{Provider: AIProviderOllama, Model: "mxbai-embed-large"},
			wantErr:  false,
		},
		{
			name:     "openai with key is valid",
			settings: EmbeddingSettings{Provider: AIProviderOpenAI, Model: "text-embedding-3-small", APIKey: "sk-test"},
			wantErr:  false,
		},
		{
			name:     "openai without key is invalid",
			settings: EmbeddingSettings{Provider: AIProviderOpenAI, Model: "text-embedding-3-small"},
			wantErr:  true,
		},
		{
			name:     "unknown provider is invalid",
			settings: EmbeddingSettings{Provider: AIProvider("local"), Model: "m"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestRetrievalSettings_Validate tests retrieval parameter bounds
func TestRetrievalSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings RetrievalSettings
		wantErr  bool
	}{
		{
			name:     "defaults are valid",
			settings: RetrievalSettings{TopK: 8, FetchK: 25, Lambda: 0.7},
			wantErr:  false,
		},
		{
			name:     "lambda zero is valid",
			settings: RetrievalSettings{TopK: 4, FetchK: 4, Lambda: 0},
			wantErr:  false,
		},
		{
			name:     "lambda one is valid",
			settings: RetrievalSettings{TopK: 4, FetchK: 10, Lambda: 1},
			wantErr:  false,
		},
		{
			name:     "zero top_k is invalid",
			settings: RetrievalSettings{TopK: 0, FetchK: 25, Lambda: 0.7},
			wantErr:  true,
		},
		{
			name:     "fetch_k below top_k is invalid",
			settings: RetrievalSettings{TopK: 8, FetchK: 4, Lambda: 0.7},
			wantErr:  true,
		},
		{
			name:     "lambda above one is invalid",
			settings: RetrievalSettings{TopK: 8, FetchK: 25, Lambda: 1.5},
			wantErr:  true,
		},
		{
			name:     "negative lambda is invalid",
			settings: RetrievalSettings{TopK: 8, FetchK: 25, Lambda: -0.1},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestChunkingSettings_Validate tests chunking parameter bounds
func TestChunkingSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings ChunkingSettings
		wantErr  bool
	}{
		{
			name:     "defaults are valid",
			settings: ChunkingSettings{Size: 500, Overlap: 50},
			wantErr:  false,
		},
		{
			name:     "zero overlap is valid",
			settings: ChunkingSettings{Size: 100, Overlap: 0},
			wantErr:  false,
		},
		{
			name:     "zero size is invalid",
			settings: ChunkingSettings{Size: 0, Overlap: 0},
			wantErr:  true,
		},
		{
			name:     "overlap equal to size is invalid",
			settings: ChunkingSettings{Size: 100, Overlap: 100},
			wantErr:  true,
		},
		{
			name:     "negative overlap is invalid",
			settings: ChunkingSettings{Size: 100, Overlap: -1},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestStorageSettings_Validate tests storage section validation
func TestStorageSettings_Validate(t *testing.T) {
	assert.NoError(t, StorageSettings{Collection: "document_store"}.Validate())
	assert.ErrorIs(t, StorageSettings{}.Validate(), ErrConfiguration)
}

// TestDefaultSettings tests that the baseline configuration is complete and valid
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.Validate())

	assert.Equal(t, AIProviderOllama, s.Embedding.Provider)
	assert.Equal(t, "mxbai-embed-large", s.Embedding.Model)
	assert.Equal(t, "gemma3", s.LLM.Model)
	assert.Equal(t, "document_store", s.Storage.Collection)
	assert.Equal(t, 500, s.Chunking.Size)
	assert.Equal(t, 50, s.Chunking.Overlap)
	assert.Equal(t, 8, s.Retrieval.TopK)
	assert.Equal(t, 25, s.Retrieval.FetchK)
	assert.InDelta(t, 0.7, s.Retrieval.Lambda, 1e-9)
}
