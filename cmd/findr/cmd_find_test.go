package main

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPickGame_NoGames(t *testing.T) {
	if _, err := pickGame(nil, testCopy); !errors.Is(err, errNoGames) {
		t.Fatalf("err = %v, want errNoGames", err)
	}
}

func TestApp_FindWithoutGames(t *testing.T) {
	var out bytes.Buffer
	a := &app{
		configPath: "/home/me/.config/findr/config.yml",
		copy:       testCopy,
		log:        slog.New(slog.DiscardHandler),
		stdout:     &out,
	}
	err := a.find()
	if !errors.Is(err, errNoGames) {
		t.Fatalf("err = %v, want errNoGames", err)
	}
	for _, sub := range []string{a.configPath, "config init"} {
		if !strings.Contains(err.Error(), sub) {
			t.Errorf("error %q does not mention %q", err, sub)
		}
	}
	if out.Len() != 0 {
		t.Fatalf("printed %q on error", out.String())
	}
}

func TestGamePreview(t *testing.T) {
	got := gamePreview(Game{Name: "Catan", Host: "alice", Players: 3})
	for _, sub := range []string{"Catan", "alice", "3"} {
		if !strings.Contains(got, sub) {
			t.Errorf("preview %q is missing %q", got, sub)
		}
	}
	if got := gamePreview(Game{Name: "Chess"}); !strings.Contains(got, "host:    ?") {
		t.Errorf("preview without host = %q", got)
	}
}
