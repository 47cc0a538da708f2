package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want string
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{runeKey('a'), core.KeyLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{runeKey('d'), core.KeyRight, true},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{runeKey('w'), core.KeyUp, true},
		{tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, true},
		{runeKey('x'), "", false},
	}
	for _, tt := range tests {
		got, ok := km.MapKey(tt.msg)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MapKey(%q) = %q, %v; want %q, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldKeysReleaseAfterHold(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	in := core.NewInput()
	t0 := time.Unix(1000, 0)

	h.Press(core.KeyUp, t0)
	h.Apply(in, t0.Add(50*time.Millisecond))
	if !in.IsKeyDown(core.KeyUp) {
		t.Fatal("key should be held within the window")
	}

	// auto-repeat extends the hold
	h.Press(core.KeyUp, t0.Add(90*time.Millisecond))
	h.Apply(in, t0.Add(150*time.Millisecond))
	if !in.IsKeyDown(core.KeyUp) {
		t.Fatal("repeat should extend the hold")
	}

	h.Apply(in, t0.Add(300*time.Millisecond))
	if in.IsKeyDown(core.KeyUp) {
		t.Fatal("key should be released after the hold expires")
	}
	if len(h.until) != 0 {
		t.Errorf("released keys should be forgotten, have %d", len(h.until))
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(time.Second)
	in := core.NewInput()
	now := time.Unix(1000, 0)

	h.Press(core.KeyLeft, now)
	h.Press(core.KeySpace, now)
	h.Apply(in, now)
	h.Release(in)

	if in.IsKeyDown(core.KeyLeft) || in.IsKeyDown(core.KeySpace) {
		t.Error("Release should drop every key")
	}
}
