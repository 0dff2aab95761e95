package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger returns a text logger writing to path at the given level.
// The terminal belongs to the UI, so an empty path discards everything.
// The returned closer must be called once the program is done.
func newLogger(path, level string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("app", appName), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
