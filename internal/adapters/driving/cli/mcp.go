package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docqa-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can query
the indexed corpus.

By default the server communicates over stdio using JSON-RPC. Use --port
to serve HTTP instead, for the MCP Inspector or remote access.

Examples:
  # Stdio mode (default)
  docqa mcp serve

  # HTTP mode
  docqa mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	svc, err := buildServices(BuildOptions{NeedAnswer: true})
	if err != nil {
		return err
	}
	defer svc.Close()

	server, err := mcp.NewServer(&mcp.Ports{
		Retriever: svc.Retriever,
		Answer:    svc.Answer,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
