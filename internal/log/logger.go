// Package log wraps log/slog with component context and an explicit
// init/teardown lifecycle. Loggers are constructed in main and passed
// down; nothing in this package maintains hidden global state beyond
// the optional slog default.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component tag and owns the optional
// log file it writes to.
type Logger struct {
	*slog.Logger
	component string
	file      *os.File
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string

	// FilePath, when set, mirrors log output to this file in addition
	// to stdout. The file is closed by Close.
	FilePath string

	// Handler overrides the default text handler entirely (used in tests).
	Handler slog.Handler
}

// DefaultConfig returns sensible defaults for logging.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: "app",
	}
}

// New creates a logger from config. Call Close when the process is done
// with it.
func New(config Config) (*Logger, error) {
	if config.Handler != nil {
		return &Logger{
			Logger:    slog.New(config.Handler),
			component: config.Component,
		}, nil
	}

	var out io.Writer = os.Stdout
	var file *os.File
	if config.FilePath != "" {
		f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", config.FilePath, err)
		}
		file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: config.Level})
	return &Logger{
		Logger:    slog.New(handler),
		component: config.Component,
		file:      file,
	}, nil
}

// Close records the shutdown and releases the log file, if any.
func (l *Logger) Close() error {
	l.Info("Logger shutting down")
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// With returns a new logger carrying the given attributes. The file
// stays owned by the parent logger.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// WithComponent returns a new logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs the logger as the process-wide slog default so
// package-level slog calls share the same handler.
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}

// ParseLevel converts a config string into a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
