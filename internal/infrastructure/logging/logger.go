package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nerrad567/gray-logic-assist/internal/infrastructure/config"
)

// Logger wraps slog.Logger with graylogic-assist-specific functionality.
//
// It provides structured logging with default fields and level-based
// filtering. Diagnostics are written to stderr and, when configured, to an
// append-only log file.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
type Logger struct {
	*slog.Logger

	file *os.File // nil when no log file is configured
}

// New creates a new Logger with the specified configuration.
//
// It configures:
//   - Output format (JSON or text)
//   - Log level filtering
//   - Default fields (service name, version)
//   - stderr output, duplicated to an append-only file when configured
//
// Parameters:
//   - cfg: Logging configuration
//   - version: Application version for default field
//
// Returns:
//   - *Logger: Configured logger ready for use
//   - error: If the log file cannot be opened for appending
func New(cfg config.LoggingConfig, version string) (*Logger, error) {
	var output io.Writer = os.Stderr

	var file *os.File
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		file = f
		output = io.MultiWriter(os.Stderr, f)
	}

	return &Logger{
		Logger: newSlog(output, cfg, version),
		file:   file,
	}, nil
}

// NewWithWriter creates a Logger that writes to an explicit destination.
// It exists for tests that assert on log output.
func NewWithWriter(w io.Writer, cfg config.LoggingConfig, version string) *Logger {
	return &Logger{Logger: newSlog(w, cfg, version)}
}

// newSlog builds the underlying slog.Logger for the given writer.
func newSlog(w io.Writer, cfg config.LoggingConfig, version string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "graylogic-assist"),
		slog.String("version", version),
	})

	return slog.New(handler)
}

// parseLevel converts a string log level to slog.Level.
//
// Supported levels: debug, info, warn, error
// Defaults to info if unrecognised.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a new Logger with additional default attributes.
//
// Parameters:
//   - args: Key-value pairs to add as default attributes
//
// Returns:
//   - *Logger: New logger with added attributes
//
// Example:
//
//	rpcLogger := logger.With("component", "mcp")
//	rpcLogger.Info("request received") // Includes component=mcp
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
		file:   l.file,
	}
}

// Close releases the log file, if one was opened. Loggers created by
// NewWithWriter or Default have nothing to release.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Default creates a default logger for use before configuration is loaded.
//
// This logger outputs to stderr in text format at info level.
// It should only be used during early startup before config is available.
//
// Returns:
//   - *Logger: Default logger
func Default() *Logger {
	return NewWithWriter(os.Stderr, config.LoggingConfig{
		Level:  "info",
		Format: "text",
	}, "dev")
}
