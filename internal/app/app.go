package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vibeterms/internal/catalog"
	"github.com/bobmcallan/vibeterms/internal/clients/gemini"
	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/services/settings"
	"github.com/bobmcallan/vibeterms/internal/services/tutor"
	"github.com/bobmcallan/vibeterms/internal/storage"
)

// App holds the catalog, the settings and tutor services, and the MCP server.
// It is the shared core used by cmd/vibeterms-server and cmd/vibeterms.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Storage     interfaces.KeyValueStorage
	Catalog     interfaces.CatalogService
	Settings    interfaces.SettingsService
	Tutor       interfaces.TutorService
	MCPServer   *server.MCPServer
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPath picks the config file: the given path, VIBETERMS_CONFIG,
// vibeterms.toml next to the binary, then config/vibeterms.toml.
func ResolveConfigPath(configPath string) string {
	if configPath == "" {
		configPath = os.Getenv("VIBETERMS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "vibeterms.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/vibeterms.toml"
		}
	}
	return configPath
}

// NewApp loads configuration, opens storage and wires all services.
// configPath may be empty, in which case ResolveConfigPath decides.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	config, err := common.LoadConfig(ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	ctx := context.Background()
	kv, err := storage.NewKeyValueStorage(ctx, logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	a, err := New(ctx, config, logger, kv, GeminiClientFactory(config, logger))
	if err != nil {
		kv.Close()
		return nil, err
	}
	return a, nil
}

// New wires an App over an already opened store. The App owns kv from here on.
func New(ctx context.Context, config *common.Config, logger *common.Logger, kv interfaces.KeyValueStorage, factory tutor.ClientFactory) (*App, error) {
	startupStart := time.Now()

	catalogStore := catalog.NewStore(kv, catalog.DefaultTerms(), logger)
	catalogStore.Load(ctx)

	credentials := common.EnvCredential{Fallback: config.Gemini.APIKey}
	if _, ok := credentials.Credential(); !ok {
		logger.Warn().Msg("Gemini API key not configured - generation needs a user key")
	}

	tutorService, err := tutor.NewService(credentials, factory, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tutor: %w", err)
	}

	mcpServer := server.NewMCPServer(
		"vibeterms",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:      config,
		Logger:      logger,
		Storage:     kv,
		Catalog:     catalogStore,
		Settings:    settings.NewStore(kv, logger),
		Tutor:       tutorService,
		MCPServer:   mcpServer,
		StartupTime: startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// GeminiClientFactory builds per-call Gemini clients using the configured
// model and thinking budget.
func GeminiClientFactory(config *common.Config, logger *common.Logger) tutor.ClientFactory {
	return func(ctx context.Context, apiKey string) (interfaces.GeminiClient, error) {
		return gemini.NewClient(ctx, apiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Gemini.Model),
			gemini.WithThinkingBudget(config.Gemini.ThinkingBudget),
		)
	}
}

// Close releases the storage held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close storage")
		}
		a.Storage = nil
	}
}
