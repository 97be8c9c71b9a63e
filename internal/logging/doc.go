// Package logging provides structured logging for twothree.
//
// # Overview
//
// The logging package provides a structured logging interface with support for:
//
//   - Multiple log levels (debug, info, warn, error)
//   - Text and JSON output formats
//   - Field-based contextual logging
//
// # Creating a Logger
//
// Create a logger with configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// Or use defaults:
//
//	logger := logging.NewDefault() // Info level, text format, stderr
//
// For tests and library defaults, use a no-op logger:
//
//	logger := logging.NewNop()
//
// # Structured Logging
//
// Add key-value pairs to log entries:
//
//	logger.Debug("node split", "promoted", 8, "depth", 2)
//
// Text format:
//
//	2026-10-16T10:30:00Z [debug] node split depth=2 promoted=8
//
// JSON format:
//
//	{"depth":2,"level":"debug","msg":"node split","promoted":8,"ts":"2026-10-16T10:30:00Z"}
//
// # Contextual Fields
//
//	fixtureLogger := logger.WithFields("fixture", "sequential")
//	fixtureLogger.Info("tree built", "len", 10)
package logging
