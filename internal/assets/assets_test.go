package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/mesh"
)

func TestBuiltinMeshes(t *testing.T) {
	l, err := Builtin()
	require.NoError(t, err)

	for _, name := range []string{"player", "bullet", "debris", "ufo_01", "asteroid_01", "asteroid_02", "asteroid_03", "asteroid_04"} {
		m, ok := l.Mesh(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, name, m.Name())
			assert.Positive(t, m.Len(), name)
		}
	}

	player, _ := l.Mesh("player")
	assert.Equal(t, 4, player.Len(), "closed polygon of 4 points")

	ufo, _ := l.Mesh("ufo_01")
	assert.Equal(t, 10, ufo.Len(), "explicit segments plus polygon")
}

func TestMissingMeshFallsBack(t *testing.T) {
	l := New()
	_, ok := l.Mesh("nope")
	assert.False(t, ok)
	assert.Same(t, mesh.Empty(), MeshOr(l, "nope"))
	assert.Same(t, mesh.Empty(), MeshOr(nil, "nope"))
}

func TestLoadYAMLRejectsBadMeshAtomically(t *testing.T) {
	l := New()
	doc := `
meshes:
  - name: good
    segments: [[0, 0, 1, 1]]
  - name: bad
    segments: [[0, 0, 1]]
`
	err := l.LoadYAML([]byte(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadMesh))
	_, ok := l.Mesh("good")
	assert.False(t, ok, "nothing is added when one definition is bad")
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"no name":     "meshes:\n  - segments: [[0, 0, 1, 1]]\n",
		"no geometry": "meshes:\n  - name: x\n",
		"one point":   "meshes:\n  - name: x\n    polygon: [[0, 0]]\n",
		"bad point":   "meshes:\n  - name: x\n    polygon: [[0, 0], [1]]\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, New().LoadYAML([]byte(doc)), ErrBadMesh)
		})
	}

	assert.Error(t, New().LoadYAML([]byte("meshes: {")))
}

func TestLoadDirOverrides(t *testing.T) {
	dir := t.TempDir()
	doc := "meshes:\n  - name: bullet\n    filled: true\n    polygon: [[0, 0], [4, 0], [4, 4]]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("junk"), 0o644))

	l, err := Builtin()
	require.NoError(t, err)
	require.NoError(t, l.LoadDir(dir))

	b, ok := l.Mesh("bullet")
	require.True(t, ok)
	assert.True(t, b.Filled())
	assert.Equal(t, 3, b.Len())
}

type tuning struct{ speed float32 }

func TestTypedLookup(t *testing.T) {
	l := New()
	l.Add(mesh.New("a", []mesh.Segment{mesh.Seg(0, 0, 1, 0)}, false))
	l.Register(tuning{speed: 1})
	l.Register(tuning{speed: 2})

	got, ok := AnyOf[tuning](l)
	require.True(t, ok)
	assert.Equal(t, float32(1), got.speed)

	assert.Len(t, AllOf[tuning](l), 2)
	assert.Len(t, AllOf[*mesh.Mesh](l), 1)

	_, ok = AnyOf[string](l)
	assert.False(t, ok)
	assert.Empty(t, AllOf[string](l))
	assert.Nil(t, AllOf[tuning](nil))
}
