package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyHold is how long a key counts as held after its last press.
// Terminals report presses and auto-repeat but never releases, so a key is
// released when the repeats stop arriving.
const KeyHold = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game keys and UI actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the core.Input key a message stands for.
// ok is false for keys the simulation does not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (key string, ok bool) {
	switch msg.String() {
	case "left", "a", "A":
		return core.KeyLeft, true
	case "right", "d", "D":
		return core.KeyRight, true
	case "up", "w", "W":
		return core.KeyUp, true
	case " ":
		return core.KeySpace, true
	case "esc":
		return core.KeyEscape, true
	case "enter":
		return core.KeyEnter, true
	}
	return "", false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j", "tab": // vim-style j for down
		return MenuActionDown
	case "enter":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// HeldKeys turns discrete key presses into held state.
type HeldKeys struct {
	hold  time.Duration
	until map[string]time.Time
}

// NewHeldKeys creates a tracker releasing keys hold after their last press.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{hold: hold, until: make(map[string]time.Time)}
}

// Press marks key as held from now.
func (h *HeldKeys) Press(key string, now time.Time) {
	h.until[key] = now.Add(h.hold)
}

// Apply writes the held state at now into in and forgets released keys.
func (h *HeldKeys) Apply(in *core.Input, now time.Time) {
	for key, until := range h.until {
		down := now.Before(until)
		in.SetKey(key, down)
		if !down {
			delete(h.until, key)
		}
	}
}

// Release drops every key at once.
func (h *HeldKeys) Release(in *core.Input) {
	clear(h.until)
	in.ReleaseAll()
}
