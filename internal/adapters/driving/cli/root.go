// Package cli implements the docqa command line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
	flagDataDir   string
)

// Services bundles everything the commands need. Fields not requested in
// BuildOptions may be nil.
type Services struct {
	Settings   domain.Settings
	ConfigPath string
	IndexPath  string
	IndexCount func() (int, error)

	Ingest    driving.IngestService
	Retriever driving.Retriever
	Answer    driving.AnswerService
	Session   driving.Conversation

	// Close releases adapters held by the services.
	Close func()
}

// BuildOptions selects which services a command needs, so commands that
// never touch a provider do not pay for its connectivity check.
type BuildOptions struct {
	ConfigDir string
	DataDir   string

	// CorpusPath overrides the configured corpus location for this run.
	CorpusPath string

	// NeedIngest wires the corpus loader, embedder and index.
	NeedIngest bool

	// NeedAnswer wires the retriever, answer service and session. Implies
	// a reachable embedding and LLM provider.
	NeedAnswer bool
}

// builder constructs services on demand. Installed by main, replaced in tests.
var builder func(BuildOptions) (*Services, error)

// SetBuilder installs the service builder used by commands.
func SetBuilder(b func(BuildOptions) (*Services, error)) {
	builder = b
}

// buildServices invokes the installed builder with the persistent flags applied.
func buildServices(opts BuildOptions) (*Services, error) {
	if builder == nil {
		return nil, errors.New("docqa is not wired up, no service builder installed")
	}
	opts.ConfigDir = flagConfigDir
	opts.DataDir = flagDataDir
	return builder(opts)
}

var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "Question answering over a local document corpus",
	Long: `docqa ingests a CSV corpus into a local vector index and answers
questions grounded in the retrieved passages. All storage is local;
models are served by Ollama by default or by OpenAI when configured.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.docqa)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.docqa/data)")
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
