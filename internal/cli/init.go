// Package cli provides the initialization steps shared by the server
// and the offline checker: env loading, configuration, and logger
// construction with explicit teardown.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"banalysis/internal/config"
	"banalysis/internal/log"
)

// LoadEnvFile loads the .env file for local development. Errors are
// ignored: the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig loads and validates configuration from the environment.
func LoadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the process logger from config and installs it as
// the slog default. The caller owns the returned logger and must Close
// it on shutdown.
func SetupLogger(cfg *config.Config, component string) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}

	logger, err := log.New(log.Config{
		Level:     level,
		Component: component,
		FilePath:  cfg.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}

	log.SetDefault(logger)
	return logger, nil
}
