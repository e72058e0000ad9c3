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

// consoleHandler writes bare messages without timestamps or level prefixes
type consoleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// fanoutHandler sends each record to every handler that accepts its level
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(h))
	for i, handler := range h {
		out[i] = handler.WithAttrs(attrs)
	}
	return out
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(h))
	for i, handler := range h {
		out[i] = handler.WithGroup(name)
	}
	return out
}

// envInt reads a positive integer knob, returning def when unset or invalid
func envInt(name string, def int, allowZero bool) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || (v == 0 && !allowZero) {
		return def
	}
	return v
}

// newRotatingFile configures lumberjack from PACKAGER_LOG_MAX_SIZE (MB), PACKAGER_LOG_MAX_BACKUPS
// and PACKAGER_LOG_MAX_AGE (days)
func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("PACKAGER_LOG_MAX_SIZE", 5, false),
		MaxBackups: envInt("PACKAGER_LOG_MAX_BACKUPS", 3, true),
		MaxAge:     envInt("PACKAGER_LOG_MAX_AGE", 30, false),
	}
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
	quiet     bool
}

// NewSplog creates a console-only splog writing to stdout.
// Debug messages are enabled when the DEBUG environment variable is set.
func NewSplog() *Splog {
	return NewSplogWithWriter(os.Stdout)
}

// NewSplogWithWriter creates a console-only splog writing to w
func NewSplogWithWriter(w io.Writer) *Splog {
	splog, _ := newSplog(w, "")
	return splog
}

// NewSplogWithConfig creates a splog writing to w that also writes timestamped records
// to a rotating log file when logFilePath is not empty
func NewSplogWithConfig(w io.Writer, logFilePath string) (*Splog, error) {
	return newSplog(w, logFilePath)
}

func newSplog(w io.Writer, logFilePath string) (*Splog, error) {
	splog := &Splog{writer: w}
	handlers := fanoutHandler{&consoleHandler{
		writer:    w,
		debugMode: os.Getenv("DEBUG") != "",
		quiet:     &splog.quiet,
	}}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := newRotatingFile(logFilePath)
		splog.logWriter = rotating
		handlers = append(handlers, slog.NewTextHandler(rotating, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
				}
				return a
			},
		}))
	}

	splog.logger = slog.New(handlers)
	return splog, nil
}

// SetQuiet suppresses console output while an interactive program owns the terminal
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet returns whether console output is suppressed
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

// log formats the message only when arguments are given, so literal percent signs survive
func (s *Splog) log(level slog.Level, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "", format, args)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, "⚠️  ", format, args)
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, "❌ ", format, args)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, "", format, args)
}

// Tip writes a tip message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "💡 ", format, args)
}

// Newline writes an empty line
func (s *Splog) Newline() {
	if !s.quiet {
		_, _ = fmt.Fprintln(s.writer)
	}
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
