// Package logging wires log/slog for the viewer: a text handler on the console
// and a JSON handler on a weekly rotating file, plus an HTTP request logger.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/giygas/entresto-info/config"
)

// LoggingService owns the process logger and the file it writes to
type LoggingService struct {
	Logger *slog.Logger
	file   *RotatingLogger
}

var DefaultLoggingService *LoggingService

var fallback = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// Options controls InitLogger
type Options struct {
	Dir            string
	RetentionWeeks int
	MaxFileSize    int64
	ConsoleLevel   slog.Level
	FileLevel      slog.Level
}

// OptionsFromConfig derives logger options from the application config
func OptionsFromConfig(cfg *config.Config, dir string) Options {
	return Options{
		Dir:            dir,
		RetentionWeeks: cfg.LogRetentionWeeks,
		MaxFileSize:    cfg.MaxLogFileSize,
		ConsoleLevel:   GetConsoleLogLevel(cfg.Env, cfg.LogLevel, false),
		FileLevel:      GetFileLogLevel(),
	}
}

// InitLogger installs the console + rotating file logger as the default.
// When the log directory cannot be used the console logger is kept alone.
func InitLogger(opts Options) *LoggingService {
	console := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: opts.ConsoleLevel})

	svc := &LoggingService{}

	file := NewRotatingLogger(opts.Dir, opts.RetentionWeeks, opts.MaxFileSize)
	if err := file.Open(); err != nil {
		svc.Logger = slog.New(console)
		svc.Logger.Error("Failed to initialize log file, logging to console only", "error", err)
	} else {
		file.StartCleanup(24 * time.Hour)
		svc.file = file
		svc.Logger = slog.New(&multiHandler{handlers: []slog.Handler{
			console,
			slog.NewJSONHandler(file, &slog.HandlerOptions{Level: opts.FileLevel}),
		}})
	}

	DefaultLoggingService = svc
	slog.SetDefault(svc.Logger)
	return svc
}

// Close flushes and closes the log file
func (s *LoggingService) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

// parseLogLevel maps LOG_LEVEL values to slog levels, info when unknown
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// GetConsoleLogLevel picks the console level. Tests stay quiet unless verbose,
// production and staging default to warn, LOG_LEVEL overrides otherwise.
func GetConsoleLogLevel(env config.Environment, level string, verbose bool) slog.Level {
	if env == config.EnvTest {
		if verbose {
			return slog.LevelInfo
		}
		return slog.LevelError
	}

	if strings.TrimSpace(level) != "" {
		return parseLogLevel(level)
	}

	switch env {
	case config.EnvProduction, config.EnvStaging:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// GetFileLogLevel is always debug, the file is for post mortems
func GetFileLogLevel() slog.Level {
	return slog.LevelDebug
}

func logger() *slog.Logger {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		return fallback
	}
	return DefaultLoggingService.Logger
}

func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}

func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}

// multiHandler fans records out to every handler enabled for the level
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: next}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: next}
}
