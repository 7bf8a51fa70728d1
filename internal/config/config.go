// Package config reads runtime settings from the environment.
//
// Values come from process environment variables, optionally seeded from a
// .env file. Variables already set in the environment win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/logging"
)

// Environment variables.
const (
	EnvLogLevel    = "PALETTE_MCP_LOG_LEVEL"
	EnvLogFormat   = "PALETTE_MCP_LOG_FORMAT"
	EnvSurfaceSize = "PALETTE_MCP_SURFACE_SIZE"
	EnvFile        = "PALETTE_MCP_ENV_FILE"
)

// Config holds settings shared by the server and the CLI.
type Config struct {
	LogLevel    string
	LogFormat   string
	SurfaceSize int

	// LoadedEnvFile is the .env file Load applied, empty when none was found.
	LoadedEnvFile string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   logging.FormatText,
		SurfaceSize: imaging.DefaultSurfaceSize,
	}
}

// Load seeds the environment from a .env file and reads the configuration.
//
// If PALETTE_MCP_ENV_FILE is set the named file must exist. Otherwise a .env
// in the working directory is used when present and skipped when not; the
// caller can tell the two apart through LoadedEnvFile.
func Load() (Config, error) {
	loaded := ""
	if path := os.Getenv(EnvFile); path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		loaded = path
	} else if err := godotenv.Load(); err == nil {
		loaded = ".env"
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg.LoadedEnvFile = loaded
	return cfg, nil
}

// FromEnv reads the configuration from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvSurfaceSize)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q is not an integer: %w", EnvSurfaceSize, v, err)
		}
		cfg.SurfaceSize = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("invalid log format: %s (valid formats: %s, %s)", c.LogFormat, logging.FormatText, logging.FormatJSON)
	}
	if c.SurfaceSize <= 0 || c.SurfaceSize > imaging.MaxSurfaceSize {
		return fmt.Errorf("surface size must be in [1, %d], got %d", imaging.MaxSurfaceSize, c.SurfaceSize)
	}
	return nil
}
