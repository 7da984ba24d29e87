package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	// Info, Warn, and Error are always enabled
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,     // 1MB (in megabytes) - default
		MaxBackups: 2,     // Keep 2 old files - default
		MaxAge:     30,    // Keep for 30 days - default
		Compress:   false, // Never compress logs - default
	}

	// Override with environment variables
	if maxSizeStr := os.Getenv("GCA_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("GCA_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("GCA_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Enable if any handler is enabled
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	// Send to all handlers
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

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser // Lumberjack logger for file logging
}

// NewSplog creates a new splog instance with console-only logging to w
// Debug messages are enabled when the DEBUG environment variable is set
func NewSplog(w io.Writer) *Splog {
	splog, _ := NewSplogWithConfig(w, "")
	return splog
}

// NewSplogWithConfig creates a new splog instance writing to w with optional file logging
func NewSplogWithConfig(w io.Writer, logFilePath string) (*Splog, error) {
	if w == nil {
		w = os.Stdout
	}
	debugMode := os.Getenv("DEBUG") != ""
	splog := &Splog{writer: w}

	consoleHandler := &simpleHandler{
		writer:    w,
		debugMode: debugMode,
	}

	var handlers []slog.Handler
	handlers = append(handlers, consoleHandler)

	// Set up file logging if path is provided
	if logFilePath != "" {
		// Ensure log directory exists
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		// Create lumberjack logger for file rotation
		lumberjackLogger := createLumberjackLogger(logFilePath)
		splog.logWriter = lumberjackLogger

		// Create file handler with timestamps
		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				// Add timestamps to file logs
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})

		handlers = append(handlers, fileHandler)
	}

	// Use multi-handler to fan out to both console and file handlers
	splog.logger = slog.New(&multiHandler{handlers: handlers})

	return splog, nil
}

// logf formats a message, prefixes it and hands it to slog.
// Without args the format is used verbatim so stray % signs survive.
func (s *Splog) logf(level slog.Level, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.logf(slog.LevelInfo, "", format, args)
}

// Success writes a success message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Success(format string, args ...interface{}) {
	s.logf(slog.LevelInfo, "✅ ", format, args)
}

// Tip writes a tip message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(format string, args ...interface{}) {
	s.logf(slog.LevelInfo, "💡 ", format, args)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logf(slog.LevelWarn, "⚠️  ", format, args)
}

// Debug writes a debug message, shown on the console only when DEBUG is set
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logf(slog.LevelDebug, "", format, args)
}

// Newline writes an empty line to the console
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
