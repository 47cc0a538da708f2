package scene

import "fmt"

// SceneID names a scene the Director can build.
type SceneID int

const (
	SceneMenu SceneID = iota
	SceneGame
	SceneSandbox
)

func (id SceneID) String() string {
	switch id {
	case SceneMenu:
		return "menu"
	case SceneGame:
		return "game"
	case SceneSandbox:
		return "sandbox"
	default:
		return fmt.Sprintf("scene(%d)", int(id))
	}
}

type switchKind uint8

const (
	switchNone switchKind = iota
	switchTo
	switchQuit
)

// Switch is the intent a scene reports after its UI pass.
type Switch struct {
	kind   switchKind
	target SceneID
}

// None keeps the current scene.
func None() Switch { return Switch{} }

// SwitchTo replaces the current scene with a fresh instance of target.
func SwitchTo(target SceneID) Switch { return Switch{kind: switchTo, target: target} }

// Quit ends the program.
func Quit() Switch { return Switch{kind: switchQuit} }

// IsNone reports whether the switch keeps the current scene.
func (s Switch) IsNone() bool { return s.kind == switchNone }

// IsQuit reports whether the switch ends the program.
func (s Switch) IsQuit() bool { return s.kind == switchQuit }

// Target returns the scene to switch to and whether this is a scene switch.
func (s Switch) Target() (SceneID, bool) {
	return s.target, s.kind == switchTo
}

func (s Switch) String() string {
	switch s.kind {
	case switchTo:
		return "switch(" + s.target.String() + ")"
	case switchQuit:
		return "quit"
	default:
		return "none"
	}
}
