package cli

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and index state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	svc, err := buildServices(BuildOptions{})
	if err != nil {
		return err
	}
	defer svc.Close()

	s := svc.Settings
	cmd.Printf("Config:     %s\n", svc.ConfigPath)
	cmd.Printf("Index:      %s\n", svc.IndexPath)
	cmd.Printf("Collection: %s\n", s.Storage.Collection)
	cmd.Printf("Embedding:  %s / %s\n", s.Embedding.Provider.Description(), s.Embedding.Model)
	cmd.Printf("LLM:        %s / %s\n", s.LLM.Provider.Description(), s.LLM.Model)
	cmd.Printf("Retrieval:  top_k=%d fetch_k=%d lambda=%.2f\n",
		s.Retrieval.TopK, s.Retrieval.FetchK, s.Retrieval.Lambda)

	count, err := svc.IndexCount()
	if err != nil {
		cmd.Printf("Chunks:     unavailable (%v)\n", err)
		return nil
	}
	cmd.Printf("Chunks:     %d\n", count)
	return nil
}
