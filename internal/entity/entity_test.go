package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

var field = core.BoundsFromSize(800, 600)

func testContext(t *testing.T, dt float32) *scene.Context {
	t.Helper()
	lib, err := assets.Builtin()
	require.NoError(t, err)
	cfg := config.Default()
	return &scene.Context{
		Env: &scene.Env{
			IDs:    scene.NewIDAllocator(),
			Config: &cfg,
			Assets: lib,
			Rand:   rand.New(rand.NewPCG(7, 11)),
		},
		DT:    dt,
		Input: core.NewInput(),
	}
}

func at(x, y float32, scale float32, rot float32) core.Transform {
	return core.NewTransform(core.V(x, y), core.V(scale, scale), rot, field)
}

func destroysOf(events []scene.Event, id scene.ID) int {
	n := 0
	for _, ev := range events {
		if d, ok := ev.(scene.DestroyEvent); ok && d.ID == id {
			n++
		}
	}
	return n
}

func spawned[T scene.Object](events []scene.Event) []T {
	var out []T
	for _, ev := range events {
		if s, ok := ev.(scene.SpawnEvent); ok {
			if o, ok := s.Object.(T); ok {
				out = append(out, o)
			}
		}
	}
	return out
}

// recordingCanvas remembers which meshes were drawn.
type recordingCanvas struct {
	meshes []string
	colors []core.Color
}

func (c *recordingCanvas) DrawMesh(m *mesh.Mesh, _ *core.Transform, col core.Color) {
	c.meshes = append(c.meshes, m.Name())
	c.colors = append(c.colors, col)
}
