// Package output provides console and file logging for the helpers.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"webchan.dev/wcgit/internal/config"
	"webchan.dev/wcgit/internal/tui"
)

// consoleHandler writes bare messages without timestamps or level prefixes.
// Error records are rendered red.
type consoleHandler struct {
	writer    io.Writer
	palette   *tui.Palette
	debugMode bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	msg := record.Message
	if record.Level >= slog.LevelError {
		msg = h.palette.Red(msg)
	}
	_, err := fmt.Fprintln(h.writer, msg)
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
			if err := handler.Handle(ctx, record.Clone()); err != nil {
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

// Splog provides console output and an optional rotating log file
type Splog struct {
	logger     *slog.Logger
	fileLogger *slog.Logger
	writer     io.Writer
	palette    *tui.Palette
	logWriter  io.WriteCloser
}

// NewSplog creates a console-only splog
func NewSplog(w io.Writer, palette *tui.Palette) *Splog {
	s, _ := NewSplogWithSettings(w, palette, config.Settings{Debug: os.Getenv("DEBUG") != ""})
	return s
}

// NewSplogWithSettings creates a splog writing to w, plus a lumberjack-rotated
// file when settings.LogFile is set.
func NewSplogWithSettings(w io.Writer, palette *tui.Palette, settings config.Settings) (*Splog, error) {
	s := &Splog{
		writer:  w,
		palette: palette,
	}

	handlers := []slog.Handler{&consoleHandler{
		writer:    w,
		palette:   palette,
		debugMode: settings.Debug,
	}}

	if settings.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(settings.LogFile), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lj := &lumberjack.Logger{
			Filename:   settings.LogFile,
			MaxSize:    settings.LogMaxSize,
			MaxBackups: settings.LogMaxBackups,
			MaxAge:     settings.LogMaxAge,
			Compress:   false,
		}
		s.logWriter = lj

		fileHandler := slog.NewTextHandler(lj, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
		s.fileLogger = slog.New(fileHandler)
	}

	s.logger = slog.New(&multiHandler{handlers: handlers})
	return s, nil
}

func (s *Splog) log(level slog.Level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, format, args)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, "⚠️  "+format, args)
}

// Error writes an error message, red on the console
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, format, args)
}

// Debug writes a debug message. The console shows it only in debug mode.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, format, args)
}

// Tip writes a tip message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "💡 "+format, args)
}

// Command prints the command about to run, highlighted green
func (s *Splog) Command(command string) {
	_, _ = fmt.Fprintln(s.writer, "Command: "+s.palette.Green(command))
	if s.fileLogger != nil {
		s.fileLogger.Info("composed command", "command", command)
	}
}

// Record writes a structured entry to the log file only
func (s *Splog) Record(msg string, attrs ...any) {
	if s.fileLogger != nil {
		s.fileLogger.Debug(msg, attrs...)
	}
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
