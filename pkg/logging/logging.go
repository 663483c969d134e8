// Package logging configures the zerolog logger shared by every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Options selects where and how much to log.
type Options struct {
	// Level is a zerolog level name. Empty means info.
	Level string
	// File receives the log when set. The TUI always logs to a file so the
	// terminal stays clean.
	File string
	// Quiet discards everything when no file is set.
	Quiet bool
}

// New builds a logger and returns a closer for the underlying file, if any.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: level %q: %w", opts.Level, err)
		}
		level = l
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: open %s: %w", opts.File, err)
		}
		return zerolog.New(f).Level(level).With().Timestamp().Logger(), f, nil
	}
	if opts.Quiet {
		return zerolog.Nop(), nopCloser{}, nil
	}
	return ForWriter(os.Stderr, level), nopCloser{}, nil
}

// ForWriter logs JSON to w, or human readable lines when w is a terminal.
func ForWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
