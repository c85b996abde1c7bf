package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/coolify-mcp/internal/app"
	"github.com/bobmcallan/coolify-mcp/internal/config"
	"github.com/bobmcallan/coolify-mcp/internal/server"
	"github.com/bobmcallan/coolify-mcp/internal/telemetry"
)

// shutdownTimeout bounds graceful HTTP and telemetry shutdown.
const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	stdio bool
	http  bool
	host  string
	port  int
}

func (o *serveOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.stdio, "stdio", false, "Serve MCP over stdin/stdout")
	cmd.Flags().BoolVar(&o.http, "http", false, "Serve MCP over streamable HTTP at /mcp")
	cmd.Flags().StringVar(&o.host, "host", "", "HTTP listen host (overrides config)")
	cmd.Flags().IntVarP(&o.port, "port", "p", 0, "HTTP listen port (overrides config)")
	cmd.MarkFlagsMutuallyExclusive("stdio", "http")
}

// transport returns the transport selected by flags, or "" to keep config.
func (o *serveOptions) transport() string {
	switch {
	case o.stdio:
		return config.TransportStdio
	case o.http:
		return config.TransportHTTP
	}
	return ""
}

func serveCmd(opts *globalOptions) *cobra.Command {
	serve := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, serve)
		},
	}
	serve.bind(cmd)
	return cmd
}

func runServe(ctx context.Context, opts *globalOptions, serve *serveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts, func(c *config.Config) {
		config.ApplyFlagOverrides(c, serve.transport(), serve.host, serve.port)
	})
	if err != nil {
		return err
	}

	logger := setupLogger(cfg)

	logger.Info().
		Str("transport", cfg.Server.Transport).
		Str("base_url", cfg.Coolify.BaseURL).
		Str("config_files", fmt.Sprintf("%v", opts.configFiles)).
		Str("version", config.GetFullVersion()).
		Msg("configuration loaded")

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry, config.GetVersion())
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Warn().Str("error", err.Error()).Msg("telemetry shutdown failed")
		}
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to initialize application")
		return err
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	switch cfg.Server.Transport {
	case config.TransportStdio:
		stdio := mcpserver.NewStdioServer(application.MCPServer)
		g.Go(func() error {
			logger.Info().Msg("serving MCP over stdio")
			err := stdio.Listen(gctx, os.Stdin, os.Stdout)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})

	case config.TransportHTTP:
		srv := server.New(application)
		g.Go(srv.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("server stopped with error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
