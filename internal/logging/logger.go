// Package logging provides structured logging for twothree.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level. Unknown strings map to
// LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format represents the log output format.
type Format int

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs logs in JSON format.
	FormatJSON
)

// ParseFormat parses a string into a Format. Unknown strings map to
// FormatText.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Logger is the interface for structured logging.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
	// WithFields returns a new logger with the given fields.
	WithFields(keysAndValues ...interface{}) Logger
}

// Config holds the logger configuration.
type Config struct {
	Level  string
	Format string
	Output string
}

type logger struct {
	level  Level
	format Format
	output io.Writer
	fields map[string]interface{}
	mu     *sync.Mutex
	now    func() time.Time
}

// New creates a new Logger with the given configuration. Output is
// "stdout", "stderr" or a file path opened for appending; an unusable path
// falls back to stderr.
func New(cfg Config) Logger {
	var output io.Writer
	switch cfg.Output {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			output = os.Stderr
		} else {
			output = f
		}
	}
	return NewWithWriter(output, ParseLevel(cfg.Level), ParseFormat(cfg.Format))
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, level Level, format Format) Logger {
	return &logger{
		level:  level,
		format: format,
		output: w,
		fields: make(map[string]interface{}),
		mu:     &sync.Mutex{},
		now:    time.Now,
	}
}

// NewDefault creates a Logger at info level writing text to stderr.
func NewDefault() Logger {
	return NewWithWriter(os.Stderr, LevelInfo, FormatText)
}

// NewNop creates a no-op logger that discards all output.
func NewNop() Logger {
	return nopLogger{}
}

func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LevelDebug, msg, keysAndValues...)
}

func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LevelInfo, msg, keysAndValues...)
}

func (l *logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LevelWarn, msg, keysAndValues...)
}

func (l *logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LevelError, msg, keysAndValues...)
}

// WithFields returns a new logger sharing l's output with the given fields
// added to every entry.
func (l *logger) WithFields(keysAndValues ...interface{}) Logger {
	fields := make(map[string]interface{}, len(l.fields)+len(keysAndValues)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	addPairs(fields, keysAndValues)
	return &logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		fields: fields,
		mu:     l.mu,
		now:    l.now,
	}
}

func (l *logger) log(level Level, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}

	entry := make(map[string]interface{}, 3+len(l.fields)+len(keysAndValues)/2)
	for k, v := range l.fields {
		entry[k] = v
	}
	addPairs(entry, keysAndValues)
	entry["ts"] = l.now().UTC().Format(time.RFC3339)
	entry["level"] = level.String()
	entry["msg"] = msg

	var line string
	if l.format == FormatJSON {
		data, err := json.Marshal(entry)
		if err != nil {
			line = fmt.Sprintf(`{"ts":%q,"level":"error","msg":"failed to marshal log entry"}`, entry["ts"])
		} else {
			line = string(data)
		}
	} else {
		line = formatText(entry)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.output, line)
}

// addPairs copies alternating key/value arguments into m. Non-string keys
// and a trailing key without a value are dropped.
func addPairs(m map[string]interface{}, keysAndValues []interface{}) {
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			m[key] = keysAndValues[i+1]
		}
	}
}

// formatText renders "ts [level] msg k=v ..." with fields in key order.
func formatText(entry map[string]interface{}) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s", entry["ts"], entry["level"], entry["msg"])

	keys := make([]string, 0, len(entry))
	for k := range entry {
		if k == "ts" || k == "level" || k == "msg" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry[k])
	}
	return sb.String()
}

type nopLogger struct{}

func (nopLogger) Debug(_ string, _ ...interface{})     {}
func (nopLogger) Info(_ string, _ ...interface{})      {}
func (nopLogger) Warn(_ string, _ ...interface{})      {}
func (nopLogger) Error(_ string, _ ...interface{})     {}
func (n nopLogger) WithFields(_ ...interface{}) Logger { return n }
