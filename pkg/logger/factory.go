// Package logger creates slog loggers for the cadastro CLI: colorized,
// human-readable output on a terminal via the tint handler, with the
// level and destination configurable through functional options.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level   slog.Level
	output  io.Writer
	noColor bool
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithNoColor disables ANSI colors, for piped or captured output.
func WithNoColor() Option {
	return func(c *config) { c.noColor = true }
}

// New creates a slog.Logger writing tinted text to stderr by default.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return slog.New(tint.NewHandler(cfg.output, &tint.Options{
		Level:      cfg.level,
		NoColor:    cfg.noColor,
		TimeFormat: time.Kitchen,
	}))
}
