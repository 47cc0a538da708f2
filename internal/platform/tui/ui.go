package tui

import (
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type widgetKind uint8

const (
	widgetLabel widgetKind = iota
	widgetButton
	widgetSeparator
)

type widget struct {
	kind widgetKind
	text string
}

// ImmediateUI collects the widgets a scene declares during a frame and draws
// them over the game. Buttons are navigated with the menu keys.
//
// A frame is bracketed by Begin and End. Button returns true for the focused
// button when Activate was called since the previous End.
type ImmediateUI struct {
	widgets   []widget
	buttons   int
	signature string
	lastSig   string
	focus     int
	activated bool
}

// NewImmediateUI creates an empty UI.
func NewImmediateUI() *ImmediateUI {
	return &ImmediateUI{}
}

// Begin starts a new frame.
func (u *ImmediateUI) Begin() {
	u.widgets = u.widgets[:0]
	u.buttons = 0
	u.signature = ""
}

// Label adds a line of text.
func (u *ImmediateUI) Label(text string) {
	u.widgets = append(u.widgets, widget{kind: widgetLabel, text: text})
}

// Separator adds a blank line.
func (u *ImmediateUI) Separator() {
	u.widgets = append(u.widgets, widget{kind: widgetSeparator})
}

// Button adds a button and reports whether it was activated.
func (u *ImmediateUI) Button(label string) bool {
	idx := u.buttons
	u.buttons++
	u.signature += label + "\x00"
	u.widgets = append(u.widgets, widget{kind: widgetButton, text: label})

	if u.activated && idx == u.focus {
		u.activated = false
		return true
	}
	return false
}

// End finishes the frame. Focus returns to the first button whenever the
// set of buttons changes, and an unused activation is dropped.
func (u *ImmediateUI) End() {
	if u.signature != u.lastSig {
		u.focus = 0
		u.lastSig = u.signature
	}
	if u.focus >= u.buttons {
		u.focus = 0
	}
	u.activated = false
}

// HasButtons reports whether the last frame declared any buttons.
func (u *ImmediateUI) HasButtons() bool {
	return u.buttons > 0
}

// Focus returns the index of the focused button.
func (u *ImmediateUI) Focus() int {
	return u.focus
}

// Move shifts focus by delta, wrapping around the button list.
func (u *ImmediateUI) Move(delta int) {
	if u.buttons == 0 {
		return
	}
	u.focus = ((u.focus+delta)%u.buttons + u.buttons) % u.buttons
}

// Activate presses the focused button on the next frame.
func (u *ImmediateUI) Activate() {
	if u.buttons > 0 {
		u.activated = true
	}
}

// HandleMenuAction applies a navigation action. It reports whether the
// action was consumed.
func (u *ImmediateUI) HandleMenuAction(a MenuAction) bool {
	if !u.HasButtons() {
		return false
	}
	switch a {
	case MenuActionUp:
		u.Move(-1)
	case MenuActionDown:
		u.Move(1)
	case MenuActionSelect:
		u.Activate()
	default:
		return false
	}
	return true
}

// Render draws the widgets of the last frame onto the screen.
// Without buttons the labels form a heads-up line at the top; otherwise
// everything is shown in a centred panel.
func (u *ImmediateUI) Render(s *core.Screen) {
	if !u.HasButtons() {
		u.renderHUD(s)
		return
	}
	u.renderPanel(s)
}

func (u *ImmediateUI) renderHUD(s *core.Screen) {
	var parts []string
	for _, w := range u.widgets {
		if w.kind == widgetLabel {
			parts = append(parts, w.text)
		}
	}
	if len(parts) == 0 {
		return
	}
	s.DrawText(1, 0, strings.Join(parts, "   "), core.ColorBrightCyan)
}

func (u *ImmediateUI) panelLines() []string {
	lines := make([]string, 0, len(u.widgets))
	btn := 0
	for _, w := range u.widgets {
		switch w.kind {
		case widgetLabel:
			lines = append(lines, w.text)
		case widgetSeparator:
			lines = append(lines, "")
		case widgetButton:
			if btn == u.focus {
				lines = append(lines, "> "+w.text+" <")
			} else {
				lines = append(lines, "  "+w.text+"  ")
			}
			btn++
		}
	}
	return lines
}

func (u *ImmediateUI) renderPanel(s *core.Screen) {
	lines := u.panelLines()
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.Rect{
		X: (s.Width() - width - 4) / 2,
		Y: (s.Height() - len(lines) - 2) / 2,
		W: width + 4,
		H: len(lines) + 2,
	}
	s.FillRect(box, ' ')
	s.DrawBox(box, core.ColorGray)

	btn := 0
	for i, w := range u.widgets {
		y := box.Y + 1 + i
		line := lines[i]
		x := box.X + 2 + (width-len([]rune(line)))/2
		switch w.kind {
		case widgetLabel:
			s.DrawText(x, y, line, core.ColorWhite)
		case widgetButton:
			color := core.ColorDefault
			if btn == u.focus {
				color = core.ColorBrightYellow
			}
			s.DrawText(x, y, line, color)
			btn++
		}
	}
}
