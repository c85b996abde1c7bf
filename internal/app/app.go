package app

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/config"
	"github.com/bobmcallan/coolify-mcp/internal/coolify"
	"github.com/bobmcallan/coolify-mcp/internal/handlers"
	"github.com/bobmcallan/coolify-mcp/internal/mcp"
	"github.com/bobmcallan/coolify-mcp/internal/tools"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Registry   *tools.Registry
	Client     *coolify.Client
	Dispatcher *tools.Dispatcher
	MCPServer  *mcpserver.MCPServer

	// HTTP handlers
	HealthHandler        *handlers.HealthHandler
	VersionHandler       *handlers.VersionHandler
	BackendHealthHandler *handlers.BackendHealthHandler
	MCPHandler           *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger, opts ...coolify.ClientOption) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	if cfg.Coolify.Token == "" {
		logger.Warn().Msg("no Coolify API token configured, authenticated endpoints will fail")
	}

	reg, err := tools.NewDefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}
	a.Registry = reg
	a.Client = coolify.NewClient(cfg.Coolify, logger, opts...)
	a.Dispatcher = tools.NewDispatcher(reg, a.Client, logger)
	a.MCPServer = mcp.NewServer(a.Dispatcher, cfg.Server.Name, config.GetVersion(), logger)

	a.initHandlers()

	logger.Info().
		Str("base_url", a.Client.BaseURL()).
		Int("tools", reg.Len()).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger, a.Registry.Len())
	a.BackendHealthHandler = handlers.NewBackendHealthHandler(a.Logger, a.Client)
	a.MCPHandler = mcp.NewHandler(a.MCPServer, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
