// Package config holds the application settings shared across subcommands.
package config

import (
	"os"

	slog "github.com/vearne/simplelog"
)

// AppSettings collects the global options every subcommand honors.
type AppSettings struct {
	// LogLevel is one of debug|info|warn|error.
	LogLevel string `json:"log-level"`
}

// AdjustLogLevel applies the configured level to the process logger.
// The SIMPLE_LOG_LEVEL environment variable takes precedence when set.
func AdjustLogLevel(level string) {
	if len(os.Getenv("SIMPLE_LOG_LEVEL")) > 0 {
		return
	}
	switch level {
	case "debug":
		slog.SetLevel(slog.DebugLevel)
	case "warn":
		slog.SetLevel(slog.WarnLevel)
	case "error":
		slog.SetLevel(slog.ErrorLevel)
	default:
		slog.SetLevel(slog.InfoLevel)
	}
}
