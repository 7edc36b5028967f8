package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askShowPassages bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question",
	Long: `Answers one question from the indexed corpus and exits.

The answer is grounded in retrieved passages; when the corpus does not
cover the question the model is instructed to say so rather than guess.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowPassages, "show-passages", false, "print the retrieved passages")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	svc, err := buildServices(BuildOptions{NeedAnswer: true})
	if err != nil {
		return err
	}
	defer svc.Close()

	answer, err := svc.Answer.Answer(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("answering failed: %w", err)
	}

	cmd.Println(strings.TrimSpace(answer.Text))

	if askShowPassages && len(answer.Passages) > 0 {
		cmd.Println()
		cmd.Println("Passages:")
		for i, p := range answer.Passages {
			cmd.Printf("  [%d] %s (%.2f)\n", i+1, p.Metadata.Title, p.Similarity)
		}
	}
	return nil
}
