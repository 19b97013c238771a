// Package logging configures zerolog for selectkit.
//
// Loggers are built once per CLI invocation from the merged logging config
// and then carried through context.Context. Components derive a child logger
// with ComponentLogger so every line carries a "component" field.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

// logFilePerm is the permission used when creating log files.
const logFilePerm = 0600

// Config describes how the logger should be built.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string
	// Format is json, console or text. Text is an alias of console without color.
	Format string
	// File is an optional log file path. Empty means stderr.
	File string
	// Output overrides stderr when File is empty. Used by tests.
	Output io.Writer
}

// LogPathResult is the outcome of building a logger.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewLogger builds a logger from cfg. It never fails: when the log file cannot
// be opened the logger falls back to stderr and reports why.
func NewLogger(cfg Config) zerolog.Logger {
	result := NewLoggerWithPath(cfg)
	return result.Logger
}

// NewLoggerWithPath builds a logger from cfg and reports where it writes.
func NewLoggerWithPath(cfg Config) LogPathResult {
	var result LogPathResult

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
		} else {
			result.file = f
			result.UsingFile = true
			result.FilePath = cfg.File
			out = f
		}
	}

	var w io.Writer
	switch strings.ToLower(cfg.Format) {
	case FormatConsole:
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: result.UsingFile}
	case FormatText:
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		w = out
	}

	result.Logger = zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	return result
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	return zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// ContextWithTraceID stores a trace ID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, if any.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace ID in ctx or a fresh ULID.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.Make().String()
}

// PrintLogPathMessage tells the user where logs are written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file, logging to stderr (%s)\n", reason)
}
