// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Quran Foundation API credentials
	ClientID     string
	ClientSecret string

	// Environment selector: "production" or "pre-production".
	Environment string

	// Language is the response locale for translated resource names.
	Language string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		ClientID:     os.Getenv("QURAN_CLIENT_ID"),
		ClientSecret: os.Getenv("QURAN_CLIENT_SECRET"),
		Environment:  getEnv("QURAN_ENV", "production"),
		Language:     getEnv("QURAN_LANGUAGE", "en"),

		LogFile:  getEnv("QURAN_MCP_LOG_FILE", "/tmp/quran-mcp.log"),
		LogLevel: parseLogLevel(getEnv("QURAN_MCP_LOG_LEVEL", "INFO")),
	}
}

// fileConfig is the YAML shape of the optional CLI config file.
type fileConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Environment  string `yaml:"environment"`
	Language     string `yaml:"language"`
}

// LoadWithFile reads configuration from a YAML file, then overlays
// environment variables on top. A missing file is not an error; a file
// that exists but cannot be parsed is.
func LoadWithFile(path string) (Config, error) {
	cfg := Load()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}

	// Environment variables win over file values.
	if cfg.ClientID == "" {
		cfg.ClientID = file.ClientID
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = file.ClientSecret
	}
	if os.Getenv("QURAN_ENV") == "" && file.Environment != "" {
		cfg.Environment = file.Environment
	}
	if os.Getenv("QURAN_LANGUAGE") == "" && file.Language != "" {
		cfg.Language = file.Language
	}

	return cfg, nil
}

// Validate checks that required credentials are present. Called at startup
// before any tool is registered; failure here is fatal.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("QURAN_CLIENT_ID is required")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		return fmt.Errorf("QURAN_CLIENT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
