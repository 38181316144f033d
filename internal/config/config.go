package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all environment-driven settings for the dashboard.
type Config struct {
	// HTTP server
	Port string

	// Uploads
	MaxUploadBytes int64

	// Parse cache
	ParseCacheSize int
	ParseCacheTTL  time.Duration

	// Rate limiting (applied to uploads)
	RateLimitRPM int

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 1<<20),
		ParseCacheSize: getEnvInt("PARSE_CACHE_SIZE", 16),
		ParseCacheTTL:  getEnvDuration("PARSE_CACHE_TTL", 10*time.Minute),
		RateLimitRPM:   getEnvInt("RATE_LIMIT_RPM", 60),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
	}
}

// Validate checks the configuration and returns an aggregated error if
// anything is invalid.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MaxUploadBytes < 1 {
		errors = append(errors, fmt.Sprintf("invalid max upload size %d: must be at least 1 byte", c.MaxUploadBytes))
	} else if c.MaxUploadBytes > 64<<20 {
		errors = append(errors, fmt.Sprintf("invalid max upload size %d: must be at most 64MB", c.MaxUploadBytes))
	}

	if c.ParseCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid parse cache size %d: must be at least 1", c.ParseCacheSize))
	} else if c.ParseCacheSize > 1000 {
		errors = append(errors, fmt.Sprintf("invalid parse cache size %d: must be at most 1000", c.ParseCacheSize))
	}

	if c.ParseCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid parse cache TTL %v: must be at least 1 second", c.ParseCacheTTL))
	} else if c.ParseCacheTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid parse cache TTL %v: must be at most 24 hours", c.ParseCacheTTL))
	}

	if c.RateLimitRPM < 1 || c.RateLimitRPM > 10000 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be between 1 and 10000 requests per minute", c.RateLimitRPM))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.LogFile != "" {
		dir := filepath.Dir(c.LogFile)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create log directory '%s': %v", dir, err))
				}
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
