package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCorpusPath string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the corpus into the vector index",
	Long: `Chunks, embeds and stores the corpus in the local vector index.

Ingest runs at most once: a populated index is left untouched. Delete the
database file under the data directory to force a rebuild.`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestCorpusPath, "corpus", "c", "", "corpus CSV file (overrides config)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	svc, err := buildServices(BuildOptions{NeedIngest: true, CorpusPath: ingestCorpusPath})
	if err != nil {
		return err
	}
	defer svc.Close()

	report, err := svc.Ingest.EnsureIngested(cmd.Context())
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	if report.Skipped {
		cmd.Println("Index already populated, nothing to do.")
		return nil
	}

	cmd.Printf("Ingested %d records as %d chunks.\n", report.Records, report.Chunks)
	if report.Failed > 0 {
		cmd.Printf("Dropped %d records after errors, re-run with --verbose for details.\n", report.Failed)
	}
	return nil
}
