package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for vibeterms
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Gemini      GeminiConfig  `toml:"gemini"`
	Logging     LoggingConfig `toml:"logging"`
	Limits      LimitsConfig  `toml:"limits"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig selects the key-value backend for catalog state and settings.
type StorageConfig struct {
	Backend   string          `toml:"backend"` // badger (default), file, memory, surrealdb
	Path      string          `toml:"path"`    // data directory for badger and file backends
	SurrealDB SurrealDBConfig `toml:"surrealdb"`
}

// SurrealDBConfig holds connection settings for the surrealdb backend.
type SurrealDBConfig struct {
	Address   string `toml:"address"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
}

// GeminiConfig holds Gemini API configuration. APIKey is the lowest-priority
// fallback behind the environment variables.
type GeminiConfig struct {
	APIKey         string `toml:"api_key"`
	Model          string `toml:"model"`
	ThinkingBudget int32  `toml:"thinking_budget"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// LimitsConfig throttles the generation endpoints of the HTTP surface.
type LimitsConfig struct {
	GeneratePerMinute int `toml:"generate_per_minute"`
	GenerateBurst     int `toml:"generate_burst"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Backend: "badger",
			Path:    "data",
			SurrealDB: SurrealDBConfig{
				Address:   "ws://localhost:8000/rpc",
				Namespace: "vibeterms",
				Database:  "glossary",
				Username:  "root",
				Password:  "root",
			},
		},
		Gemini: GeminiConfig{
			Model:          "gemini-2.5-flash",
			ThinkingBudget: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Limits: LimitsConfig{
			GeneratePerMinute: 20,
			GenerateBurst:     3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory is loaded first, if present.
func LoadConfig(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VIBETERMS_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("VIBETERMS_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("VIBETERMS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("VIBETERMS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("VIBETERMS_DATA_PATH"); path != "" {
		config.Storage.Path = filepath.Clean(path)
	}

	if backend := os.Getenv("VIBETERMS_STORAGE_BACKEND"); backend != "" {
		config.Storage.Backend = strings.ToLower(backend)
	}

	if model := os.Getenv("VIBETERMS_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
