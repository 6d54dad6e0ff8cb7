// Package logging centralizes slog setup so every command logs the same
// way. Output goes to stderr as text by default; JSON and a rotated log
// file can be enabled by flag or environment.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization. Zero values mean info-level
// text logging to stderr only.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // text|json
	File   string // optional rotated log file path
}

// Environment fallbacks, consulted for options the flags left empty.
const (
	EnvLevel  = "OPENFIXTURE_LOG_LEVEL"
	EnvFormat = "OPENFIXTURE_LOG_FORMAT"
	EnvFile   = "OPENFIXTURE_LOG_FILE"
)

// FromEnv fills unset options from the environment.
func (o Options) FromEnv() Options {
	if o.Level == "" {
		o.Level = os.Getenv(EnvLevel)
	}
	if o.Format == "" {
		o.Format = os.Getenv(EnvFormat)
	}
	if o.File == "" {
		o.File = os.Getenv(EnvFile)
	}
	return o
}

// Init builds the logger and installs it as slog's default.
func Init(opts Options) *slog.Logger {
	lvl := parseLevel(opts.Level)

	var console slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		console = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		console = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	}

	handler := console
	if strings.TrimSpace(opts.File) != "" {
		w := &lj.Logger{Filename: opts.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		file := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
		handler = fanout{console, file}
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// fanout duplicates records to every wrapped handler.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, lvl slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, lvl) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, rec slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, rec.Level) {
			continue
		}
		if err := h.Handle(ctx, rec.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
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
