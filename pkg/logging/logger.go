// Package logging configures the zerolog logger shared by all client
// packages.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel names a minimum severity for emitted entries.
type LogLevel string

const (
	// LevelDebug emits everything, including per-page fetch entries.
	LevelDebug LogLevel = "debug"

	// LevelInfo emits run-level events and above.
	LevelInfo LogLevel = "info"

	// LevelWarn emits degraded conditions and errors only.
	LevelWarn LogLevel = "warn"

	// LevelError emits errors only.
	LevelError LogLevel = "error"
)

// Levels lists the accepted level names, for CLI help text.
func Levels() []string {
	return []string{string(LevelDebug), string(LevelInfo), string(LevelWarn), string(LevelError)}
}

// Config holds logger configuration.
type Config struct {
	// Level is the minimum severity to emit. Unknown names mean info.
	Level LogLevel

	// Pretty switches from JSON lines to human-readable console output.
	Pretty bool

	// Output receives the entries. Nil means os.Stderr.
	Output io.Writer
}

// DefaultConfig returns JSON logging at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger and returns it. Library
// packages derive their component loggers from the global one, so Setup
// should run once, early.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}

// parseLevel maps a level name to its zerolog level, defaulting to info.
func parseLevel(level LogLevel) zerolog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger returns a logger tagged with the given component name.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Page fetches (endpoint, offset, rows)
//   - Sequence exhaustion and cursor resets
//   - Snapshot page writes
//
// Info: Normal operation events
//   - Mirror run start/finish per endpoint
//   - Manifest writes
//   - Metrics server startup/shutdown
//
// Warn: Warning conditions that don't prevent operation
//   - Degraded filesystem reads (unreadable page treated as empty)
//   - Page fetch failures surfaced to the consumer
//   - Lock contention on a snapshot root
//
// Error: Error conditions requiring attention
//   - Provider error statuses
//   - Snapshot write failures
//   - Configuration errors
//
// Context Fields:
//   - endpoint: provider endpoint name (e.g. getCountries)
//   - offset: page offset of the fetch
//   - rows: page size in rows
//   - status_code: HTTP status code from the provider
//   - duration: request duration
//   - source: fetch strategy (filesystem, remote, redis)
//   - path: page file path for filesystem operations
//   - run_id: mirror run identifier
