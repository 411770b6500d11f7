// Package app wires configuration, storage, the catalog, services, and the
// MCP server into one shared core used by cmd/finance-server.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/StGrozdanov/finance-web/internal/catalog"
	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/interfaces"
	"github.com/StGrozdanov/finance-web/internal/services/following"
	"github.com/StGrozdanov/finance-web/internal/services/portfolio"
	"github.com/StGrozdanov/finance-web/internal/storage"
)

// App holds all initialized services and the MCP server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	Catalog          *catalog.Catalog
	PortfolioService interfaces.PortfolioService
	FollowingService interfaces.FollowingService
	MCPServer        *server.MCPServer
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes storage, the catalog, services, and the MCP server.
// configPath may be empty, in which case FINWEB_CONFIG and the binary
// directory are checked.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("FINWEB_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "finance-web.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/finance-web.toml" // development fallback
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to the binary directory so the server
	// is self-contained wherever it is installed.
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLogger(config.Logging.Level)

	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	cat, err := loadCatalog(config, logger)
	if err != nil {
		storageManager.Close()
		return nil, err
	}

	portfolioService := portfolio.NewService(storageManager, cat, logger)
	followingService := following.NewService(storageManager, cat, logger)

	if err := portfolioService.EnsureDemoPortfolio(context.Background()); err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to seed demo portfolio: %w", err)
	}

	mcpServer := server.NewMCPServer(
		"finance-web",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		Catalog:          cat,
		PortfolioService: portfolioService,
		FollowingService: followingService,
		MCPServer:        mcpServer,
		StartupTime:      startupStart,
	}

	a.registerTools()

	logger.Info().
		Str("version", common.GetFullVersion()).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// loadCatalog loads the asset catalog from the configured JSON file, or the
// embedded seed catalog when no path is set.
func loadCatalog(config *common.Config, logger *common.Logger) (*catalog.Catalog, error) {
	if config.Catalog.Path == "" {
		cat := catalog.Default()
		logger.Debug().Int("assets", cat.Len()).Msg("Using seed asset catalog")
		return cat, nil
	}

	cat, err := catalog.LoadFile(config.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", config.Catalog.Path, err)
	}
	logger.Info().
		Str("path", config.Catalog.Path).
		Int("assets", cat.Len()).
		Msg("Asset catalog loaded")
	return cat, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createListPortfoliosTool(), handleListPortfolios(a.PortfolioService, logger))
	s.AddTool(createGetPortfolioSummaryTool(), handleGetPortfolioSummary(a.PortfolioService, logger))
	s.AddTool(createGetCashBalancesTool(), handleGetCashBalances(a.PortfolioService, logger))
	s.AddTool(createGetDailyMoversTool(), handleGetDailyMovers(a.PortfolioService, logger))
	s.AddTool(createAddTransactionTool(), handleAddTransaction(a.PortfolioService, logger))
}
