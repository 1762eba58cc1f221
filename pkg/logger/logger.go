// Package logger is a thin structured logging layer over log/slog. Records
// carry the call site as a "source" attribute relative to the working
// directory.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Logger is the logging surface used across the module.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	// Fatal logs at error level and exits the process.
	Fatal(ctx context.Context, msg string, fields ...Field)

	// Named scopes every following attribute under name.
	Named(name string) Logger
}

// Field is one structured attribute.
type Field struct {
	Key   string
	Value any
}

func String(key, val string) Field          { return Field{Key: key, Value: val} }
func Int(key string, val int) Field         { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }
func Bool(key string, val bool) Field       { return Field{Key: key, Value: val} }
func Any(key string, val any) Field         { return Field{Key: key, Value: val} }

// Error records err under the "error" key.
func Error(err error) Field { return Field{Key: "error", Value: err} }

// Duration renders d as a string so text and JSON handlers agree.
func Duration(key string, d time.Duration) Field { return Field{Key: key, Value: d.String()} }

// frames between runtime.Caller in site and the code that logged.
const siteDepth = 3

var (
	global   Logger
	levelVar slog.LevelVar
)

// workDir is resolved once; call sites are reported relative to it.
var workDir = sync.OnceValue(func() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
})

type slogLogger struct {
	h *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelDebug, msg, fields)
}

func (l *slogLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelInfo, msg, fields)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelWarn, msg, fields)
}

func (l *slogLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelError, msg, fields)
}

func (l *slogLogger) Fatal(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelError, msg, fields)
	os.Exit(1)
}

func (l *slogLogger) Named(name string) Logger {
	return &slogLogger{h: l.h.WithGroup(name)}
}

// emit must be called directly from a Logger method so siteDepth holds.
func (l *slogLogger) emit(ctx context.Context, level slog.Level, msg string, fields []Field) {
	if !l.h.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields)+1)
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	attrs = append(attrs, slog.String("source", site()))
	l.h.LogAttrs(ctx, level, msg, attrs...)
}

// site formats the logging call site as path/file.go:line.
func site() string {
	_, file, line, ok := runtime.Caller(siteDepth)
	if !ok {
		return "unknown:0"
	}
	if wd := workDir(); wd != "" {
		if rel, err := filepath.Rel(wd, file); err == nil {
			return fmt.Sprintf("%s:%d", rel, line)
		}
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Init installs the global logger on stderr. Stdout is reserved for
// command output such as the advisory report.
func Init() error {
	return InitWithWriter(os.Stderr)
}

// InitWithWriter installs the global logger writing text records to w and
// resets the level to info.
func InitWithWriter(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	levelVar.Set(slog.LevelInfo)
	global = &slogLogger{h: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar}))}
	return nil
}

// Nop returns a logger that discards everything. Domain packages default to
// it so they stay usable without global initialization.
func Nop() Logger {
	return &slogLogger{h: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Get returns the global logger. It panics before Init.
func Get() Logger {
	if global == nil {
		panic("logger not initialized: call logger.Init first")
	}
	return global
}

// Named is Get().Named(name).
func Named(name string) Logger {
	return Get().Named(name)
}

// Sync exists for callers that defer a flush; slog writes unbuffered.
func Sync() error {
	return nil
}

// SetLevel changes the level of the global logger.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// SetLevelString accepts debug, info, warn (or warning) and error in any
// case. An empty string means info.
func SetLevelString(level string) error {
	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = slog.LevelDebug
	case "", "info":
		l = slog.LevelInfo
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	SetLevel(l)
	return nil
}
