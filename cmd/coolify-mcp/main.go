// coolify-mcp exposes the Coolify REST API as Model Context Protocol tools.
//
// Usage:
//
//	coolify-mcp                         # serve over stdio (default)
//	coolify-mcp serve --http --port 4250
//	coolify-mcp tools [--json]
//	coolify-mcp call coolify_get_version
//	coolify-mcp version
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalOptions are flags shared by every subcommand.
type globalOptions struct {
	configFiles []string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	serve := &serveOptions{}

	rootCmd := &cobra.Command{
		Use:           "coolify-mcp",
		Short:         "MCP server for the Coolify API",
		Long:          "coolify-mcp exposes the Coolify self-hosted PaaS REST API as Model Context Protocol tools over stdio or streamable HTTP.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, serve)
		},
	}

	rootCmd.PersistentFlags().StringSliceVarP(&opts.configFiles, "config", "c", nil,
		"Configuration file path, TOML or YAML (can be specified multiple times; default coolify-mcp.toml)")
	serve.bind(rootCmd)

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(toolsCmd())
	rootCmd.AddCommand(callCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}
