package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
}

func TestIngestCmd_HasCorpusFlag(t *testing.T) {
	flag := ingestCmd.Flags().Lookup("corpus")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestIngestCmd_ReportsCounts(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()
	stub.report = driving.IngestReport{Records: 3, Chunks: 7}

	out, err := execute(t, "ingest")
	require.NoError(t, err)
	assert.Contains(t, out, "Ingested 3 records as 7 chunks.")
}

func TestIngestCmd_ReportsSkip(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()
	stub.report = driving.IngestReport{Skipped: true}

	out, err := execute(t, "ingest")
	require.NoError(t, err)
	assert.Contains(t, out, "already populated")
}

func TestIngestCmd_ReportsDrops(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()
	stub.report = driving.IngestReport{Records: 2, Chunks: 4, Failed: 1}

	out, err := execute(t, "ingest")
	require.NoError(t, err)
	assert.Contains(t, out, "Dropped 1 records")
}

func TestIngestCmd_PropagatesFailure(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()
	stub.ingestErr = domain.ErrIngestion

	_, err := execute(t, "ingest")
	assert.ErrorIs(t, err, domain.ErrIngestion)
}
