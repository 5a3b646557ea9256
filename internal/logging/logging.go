// Package logging configures the process-wide slog logger, with optional
// file output and rotation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options holds logging configuration.
type Options struct {
	Level      string // debug, info, warn, error
	FilePath   string // log file path; empty logs to stderr
	MaxSizeMB  int    // rotate after this many MB
	MaxBackups int    // rotated files to retain
	MaxAgeDays int    // days to retain rotated files
	Compress   bool   // compress rotated files
}

// Setup installs the default slog logger per opts and returns a cleanup
// function to call on shutdown.
func Setup(opts Options) (func() error, error) {
	var writer io.Writer
	cleanup := func() error { return nil }

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
			LocalTime:  true,
		}
		writer = lj
		cleanup = lj.Close
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	})
	slog.SetDefault(slog.New(handler))

	return cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
