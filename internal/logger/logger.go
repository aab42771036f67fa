// Package logger sets up the process-wide slog logger: a text handler on
// stderr and, optionally, a rotated JSON file.
package logger

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"olivier/internal/config"
)

// Init 初始化全局日志，返回的 io.Closer 用于关闭日志文件
func Init(cfg config.Log) (io.Closer, error) {
	logger, closer, warnings, err := New(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	// also routes the standard log package through slog
	slog.SetDefault(logger)

	for _, w := range warnings {
		logger.Warn(w)
	}
	return closer, nil
}

// New builds a logger writing text to console. Invalid levels fall back
// (console to warn, file to info) and are reported as warnings.
func New(cfg config.Log, console io.Writer) (*slog.Logger, io.Closer, []string, error) {
	var warnings []string

	consoleLevel, ok := ParseLevel(cfg.Level)
	if !ok {
		consoleLevel = slog.LevelWarn
		warnings = append(warnings, "invalid log level '"+cfg.Level+"' for console logging, fall back to 'warn'")
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: consoleLevel, AddSource: true}),
	}

	var closer io.Closer = nopCloser{}
	if cfg.File.Enabled {
		if err := os.MkdirAll(cfg.File.Path, 0o755); err != nil {
			return nil, nil, nil, err
		}
		fileLevel, ok := ParseLevel(cfg.File.Level)
		if !ok {
			fileLevel = slog.LevelInfo
			warnings = append(warnings, "invalid log level '"+cfg.File.Level+"' for file logging, fall back to 'info'")
		}
		file := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.File.Path, "logs.json"),
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     7,
		}
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: fileLevel, AddSource: true}))
		closer = file
	}

	return slog.New(fanout(handlers)), closer, warnings, nil
}

// ParseLevel accepts debug, info, warn/warning and error, case-insensitive.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Std returns a *log.Logger that writes through l at the given level.
func Std(l *slog.Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(l.Handler(), level)
}
