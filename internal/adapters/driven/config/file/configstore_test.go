package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
}

func TestNewConfigStore_DefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	settings, err := store.Settings()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[chunking]
size = 200
overlap = 20

[retrieval]
lambda = 0.5
`)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	settings, err := store.Settings()
	require.NoError(t, err)
	assert.Equal(t, 200, settings.Chunking.Size)
	assert.Equal(t, 20, settings.Chunking.Overlap)
	assert.Equal(t, 0.5, settings.Retrieval.Lambda)

	// Untouched sections keep their defaults.
	assert.Equal(t, "mxbai-embed-large", settings.Embedding.Model)
	assert.Equal(t, 8, settings.Retrieval.TopK)
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[retrieval\nlambda = ")

	_, err := NewConfigStore(dir)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNewConfigStore_InvalidSettings(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[retrieval]
lambda = 1.5
`)

	_, err := NewConfigStore(dir)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNewConfigStore_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "docqa")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
