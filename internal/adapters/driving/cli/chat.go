package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docqa-cli/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question answering session",
	Long: `Opens a terminal chat session against the indexed corpus.

Controls:
  Enter  - Ask the typed question
  Esc    - Quit
  Ctrl+C - Quit`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("chat needs an interactive terminal, use 'docqa ask' instead")
	}

	svc, err := buildServices(BuildOptions{NeedAnswer: true})
	if err != nil {
		return err
	}
	defer svc.Close()

	app, err := tui.NewApp(&tui.Ports{Session: svc.Session})
	if err != nil {
		return fmt.Errorf("starting chat: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat session error: %w", err)
	}
	return nil
}
