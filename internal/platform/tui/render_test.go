package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestRenderScreenTrimsRows(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "ab" {
		t.Errorf("row 0 = %q, want %q", lines[0], "ab")
	}
	if lines[1] != "" {
		t.Errorf("blank row = %q, want empty", lines[1])
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(12, 1)
	s.DrawText(0, 0, "ab", core.ColorDefault)
	s.DrawText(3, 0, "xyz", core.ColorBrightRed)

	out := RenderScreen(s)
	if !strings.HasPrefix(out, "ab ") {
		t.Errorf("default run should be unstyled, got %q", out)
	}
	if !strings.Contains(out, "xyz") {
		t.Errorf("colored run missing from %q", out)
	}
}
