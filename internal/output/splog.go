// Package output provides status-tagged logging and console output for scripty.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// consoleHandler is a custom slog handler that writes bare messages, routing
// failures to standard error and everything else to standard output.
type consoleHandler struct {
	stdout    io.Writer
	stderr    io.Writer
	debugMode bool
	quiet     *bool // Pointer to quiet flag so it can be changed dynamically
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	// Info, Warn, and Error are always enabled
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil // Suppress output when in quiet mode
	}
	w := h.stdout
	if record.Level >= slog.LevelError {
		w = h.stderr
	}
	_, err := fmt.Fprintln(w, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides status-tagged logging. Action and Success lines go to
// standard output, Failure lines to standard error. Logging itself never
// fails the process.
type Splog struct {
	logger    *slog.Logger
	stdout    io.Writer
	styles    styles
	logWriter io.WriteCloser // Lumberjack logger for file logging
	quiet     bool           // When true, suppresses all console output
}

// NewSplog creates a new splog instance writing to the process streams, with
// debug-level lines enabled by debugMode and a rotating file log added when
// logFilePath is non-empty. Logging never fails the process: when the file
// sink cannot be set up, NewSplog warns once and degrades to console-only
// output instead of failing.
func NewSplog(noColor, debugMode bool, logFilePath string) *Splog {
	splog, err := NewSplogWithConfig(os.Stdout, os.Stderr, noColor, debugMode, logFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		splog, _ = NewSplogWithConfig(os.Stdout, os.Stderr, noColor, debugMode, "")
	}
	return splog
}

// NewSplogWithWriters creates a console-only splog writing to the given
// streams. Used by tests and anywhere output needs to be captured.
func NewSplogWithWriters(stdout, stderr io.Writer, noColor bool) *Splog {
	splog, _ := NewSplogWithConfig(stdout, stderr, noColor, false, "")
	return splog
}

// NewSplogWithConfig creates a new splog instance with optional file logging
func NewSplogWithConfig(stdout, stderr io.Writer, noColor, debugMode bool, logFilePath string) (*Splog, error) {
	splog := &Splog{
		stdout: stdout,
		styles: newStyles(stdout, noColor),
		quiet:  false,
	}

	handler := &consoleHandler{
		stdout:    stdout,
		stderr:    stderr,
		debugMode: debugMode,
		quiet:     &splog.quiet,
	}

	var handlers []slog.Handler
	handlers = append(handlers, handler)

	// Set up file logging if path is provided
	if logFilePath != "" {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(logFilePath)
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})

		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})

	return splog, nil
}

// SetQuiet sets the quiet mode for the logger.
// When quiet is true, all console output is suppressed.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet returns whether the logger is in quiet mode.
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

// logMessage is a helper to log a message using slog without format string validation
func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

// sprintf formats like fmt.Sprintf but passes the format through untouched
// when no arguments are given, so callers can log arbitrary text safely.
func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Action writes an action message ("something is about to happen") to stdout.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Action(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, s.styles.action.Render("➜")+" "+sprintf(format, args...))
}

// Success writes a success message to stdout.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Success(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, s.styles.success.Render("✓")+" "+sprintf(format, args...))
}

// Failure writes a failure message to stderr, prefixed with "Failed to ".
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Failure(format string, args ...interface{}) {
	s.logMessage(slog.LevelError, s.styles.failure.Render("✗ Failed to "+sprintf(format, args...)))
}

// Info writes a plain message to stdout with no status symbol.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, sprintf(format, args...))
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, sprintf(format, args...))
}

// Tip writes a tip message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, sprintf("💡 "+format, args...))
}

// Newline writes a newline to stdout
func (s *Splog) Newline() {
	if s.quiet {
		return
	}
	_, _ = fmt.Fprintln(s.stdout)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
