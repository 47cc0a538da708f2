package asteroids

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

func testEnv(t *testing.T, cfg config.Config) *scene.Env {
	t.Helper()
	lib, err := assets.Builtin()
	require.NoError(t, err)
	return &scene.Env{
		IDs:    scene.NewIDAllocator(),
		Config: &cfg,
		Assets: lib,
		Rand:   rand.New(rand.NewPCG(3, 5)),
	}
}

func frame(env *scene.Env, dt float32) *scene.Context {
	return &scene.Context{Env: env, DT: dt, Input: core.NewInput()}
}

// scriptUI records widgets and activates the buttons named in press.
type scriptUI struct {
	press   map[string]bool
	labels  []string
	buttons []string
}

func pressing(labels ...string) *scriptUI {
	u := &scriptUI{press: make(map[string]bool)}
	for _, l := range labels {
		u.press[l] = true
	}
	return u
}

func (u *scriptUI) Label(text string) { u.labels = append(u.labels, text) }
func (u *scriptUI) Separator()        {}

func (u *scriptUI) Button(label string) bool {
	u.buttons = append(u.buttons, label)
	return u.press[label]
}

func (u *scriptUI) text() string { return strings.Join(u.labels, "\n") }
