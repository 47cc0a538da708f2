package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{"asteroids", "asteroids-game", "asteroids-sandbox"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestLocalAddr(t *testing.T) {
	tests := []struct{ in, want string }{
		{":8080", "localhost:8080"},
		{"0.0.0.0:9000", "localhost:9000"},
		{"example.com:80", "example.com:80"},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		if got := localAddr(tt.in); got != tt.want {
			t.Errorf("localAddr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPortOf(t *testing.T) {
	if got := portOf(":23234"); got != "23234" {
		t.Errorf("portOf = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/.asteroids/x.db"); got != filepath.Join(home, ".asteroids", "x.db") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "asteroids.log")
	logger, closer, err := newFileLogger(path)
	if err != nil {
		t.Fatalf("newFileLogger: %v", err)
	}
	logger.Info("hello")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
