// Package logging provides structured logging for graylogic-assist.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the bridge.
//
// # Features
//
//   - JSON output for machine-parsable diagnostics, text for development
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Optional append-only log file alongside stderr
//   - Thread-safe for concurrent use
//
// # Output
//
// Unlike a conventional service, stdout is not available as a log
// destination: the serve loop owns stdout for protocol responses.
// Diagnostics always go to stderr and, when a file path is configured,
// to an append-only log file as well.
//
// # Configuration
//
// Logging is configured via the LoggingConfig section:
//
//	logging:
//	  level: "info"          # debug, info, warn, error
//	  format: "text"         # json, text
//	  file: "assist.log"     # optional append-only file
//
// # Usage
//
//	logger, err := logging.New(cfg.Logging, "1.0.0")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//	logger.Info("starting bridge", "url", cfg.HomeAssistant.URL)
//
// # Security
//
// Never log secrets, tokens, passwords, or API keys.
package logging
