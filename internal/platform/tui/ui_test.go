package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// menuFrame declares the buttons and returns which one fired, or "".
func menuFrame(u *ImmediateUI, labels ...string) string {
	u.Begin()
	u.Label("TITLE")
	fired := ""
	for _, l := range labels {
		if u.Button(l) {
			fired = l
		}
	}
	u.End()
	return fired
}

func TestImmediateUIActivatesFocusedButton(t *testing.T) {
	u := NewImmediateUI()
	menuFrame(u, "Play", "Quit")

	u.HandleMenuAction(MenuActionDown)
	u.HandleMenuAction(MenuActionSelect)
	if got := menuFrame(u, "Play", "Quit"); got != "Quit" {
		t.Errorf("fired %q, want Quit", got)
	}
	if got := menuFrame(u, "Play", "Quit"); got != "" {
		t.Errorf("activation should last one frame, fired %q", got)
	}
}

func TestImmediateUIFocusWraps(t *testing.T) {
	u := NewImmediateUI()
	menuFrame(u, "A", "B", "C")

	u.Move(-1)
	if u.Focus() != 2 {
		t.Errorf("focus = %d, want 2", u.Focus())
	}
	u.Move(1)
	if u.Focus() != 0 {
		t.Errorf("focus = %d, want 0", u.Focus())
	}
}

func TestImmediateUIFocusResetsWhenButtonsChange(t *testing.T) {
	u := NewImmediateUI()
	menuFrame(u, "A", "B", "C")
	u.Move(2)
	menuFrame(u, "A", "B", "C")
	if u.Focus() != 2 {
		t.Fatalf("focus = %d, want 2", u.Focus())
	}

	menuFrame(u, "Back")
	if u.Focus() != 0 {
		t.Errorf("focus = %d after menu change, want 0", u.Focus())
	}
}

func TestImmediateUINavigationNeedsButtons(t *testing.T) {
	u := NewImmediateUI()
	u.Begin()
	u.Label("SCORE 0")
	u.End()

	if u.HandleMenuAction(MenuActionUp) {
		t.Error("navigation should pass through without buttons")
	}
}

func TestImmediateUIRenderHUD(t *testing.T) {
	u := NewImmediateUI()
	u.Begin()
	u.Label("SCORE 10")
	u.Label("LIVES 2")
	u.End()

	s := core.NewScreen(40, 5)
	u.Render(s)
	if row := s.Row(0); !strings.Contains(row, "SCORE 10   LIVES 2") {
		t.Errorf("HUD row = %q", row)
	}
}

func TestImmediateUIRenderPanel(t *testing.T) {
	u := NewImmediateUI()
	menuFrame(u, "Play", "Quit")

	s := core.NewScreen(40, 12)
	u.Render(s)
	out := s.String()
	for _, want := range []string{"TITLE", "> Play <", "Quit", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
}
