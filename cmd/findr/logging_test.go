package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("no file discards", func(t *testing.T) {
		log, closer, err := newLogger("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		log.Info("dropped")
		if err := closer.Close(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("bad level", func(t *testing.T) {
		_, _, err := newLogger(filepath.Join(t.TempDir(), "x.log"), "chatty")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("writes at level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "findr.log")
		log, closer, err := newLogger(path, "warn")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		log.Info("quiet")
		log.Warn("loud", "field", "email")
		closer.Close()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		got := string(data)
		if strings.Contains(got, "quiet") || !strings.Contains(got, "loud") {
			t.Fatalf("log = %q", got)
		}
		if !strings.Contains(got, "app="+appName) {
			t.Fatalf("log lines are missing the app attribute: %q", got)
		}
	})
}
