package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/coolify-mcp/internal/app"
	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/config"
	"github.com/bobmcallan/coolify-mcp/internal/tools"
)

func toolsCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server advertises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := tools.NewDefaultRegistry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if outputJSON {
				data, err := json.MarshalIndent(reg.Definitions(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, r := range reg.Routes() {
				fmt.Fprintf(out, "%-48s %-6s %s\n", r.Name, r.Method, r.Path)
			}
			fmt.Fprintf(out, "\n%d tools\n", reg.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Print full tool definitions as JSON")
	return cmd
}

func callCmd(opts *globalOptions) *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke one tool against the configured Coolify instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := map[string]any{}
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &toolArgs); err != nil {
					return fmt.Errorf("invalid --args: %w", err)
				}
			}

			cfg, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg)

			out, err := invoke(cmd.Context(), cfg, logger, args[0], toolArgs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "Tool arguments as a JSON object")
	return cmd
}

// invoke runs one tool through the same dispatcher the server uses.
func invoke(ctx context.Context, cfg *config.Config, logger *common.Logger, name string, args map[string]any) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	application, err := app.New(cfg, logger)
	if err != nil {
		return "", err
	}
	defer application.Close()
	return application.Dispatcher.Invoke(ctx, name, args)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coolify-mcp %s\n", config.GetFullVersion())
		},
	}
}
