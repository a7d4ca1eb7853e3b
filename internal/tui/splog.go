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

// consoleHandler is a slog handler that writes bare messages without
// timestamps or level prefixes. Debug messages are gated on DEBUG.
type consoleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// fileLogger builds the rotating file writer. Rotation limits can be tuned
// through SEQPIPES_LOG_MAX_SIZE (MB), SEQPIPES_LOG_MAX_BACKUPS and
// SEQPIPES_LOG_MAX_AGE (days).
func fileLogger(path string) *lumberjack.Logger {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}
	if v, err := strconv.Atoi(os.Getenv("SEQPIPES_LOG_MAX_SIZE")); err == nil && v > 0 {
		lj.MaxSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("SEQPIPES_LOG_MAX_BACKUPS")); err == nil && v >= 0 {
		lj.MaxBackups = v
	}
	if v, err := strconv.Atoi(os.Getenv("SEQPIPES_LOG_MAX_AGE")); err == nil && v > 0 {
		lj.MaxAge = v
	}
	return lj
}

// Splog provides status output on the console plus an optional rotating
// debug log on disk.
type Splog struct {
	console   *slog.Logger
	file      *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
}

// NewSplog creates a console-only splog. Debug messages are enabled when
// the DEBUG environment variable is set.
func NewSplog() *Splog {
	s, _ := NewSplogWithFile("")
	return s
}

// NewSplogWithFile creates a splog that additionally appends timestamped
// records to logFilePath with rotation. An empty path disables file output.
func NewSplogWithFile(logFilePath string) (*Splog, error) {
	s := &Splog{writer: os.Stdout}
	s.console = slog.New(&consoleHandler{
		writer:    s.writer,
		debugMode: os.Getenv("DEBUG") != "",
	})

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		lj := fileLogger(logFilePath)
		s.logWriter = lj
		s.file = slog.New(slog.NewTextHandler(lj, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return s, nil
}

func (s *Splog) log(level slog.Level, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.console.Log(context.Background(), level, msg)
	if s.file != nil {
		s.file.Log(context.Background(), level, msg)
	}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...any) {
	s.log(slog.LevelInfo, format, args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...any) {
	s.log(slog.LevelWarn, "⚠️  "+format, args...)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...any) {
	s.log(slog.LevelError, "❌ "+format, args...)
}

// Debug writes a debug message
func (s *Splog) Debug(format string, args ...any) {
	s.log(slog.LevelDebug, format, args...)
}

// Page writes pre-formatted content as-is
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.writer, content)
}

// Newline writes a newline
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
