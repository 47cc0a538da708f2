package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
)

var field = core.BoundsFromSize(800, 600)

// square is a unit square centred on the origin.
var square = mesh.New("square", []mesh.Segment{
	mesh.Seg(-1, -1, 1, -1),
	mesh.Seg(1, -1, 1, 1),
	mesh.Seg(1, 1, -1, 1),
	mesh.Seg(-1, 1, -1, -1),
}, false)

type testBody struct {
	layer   Layer
	enabled bool
	mesh    *mesh.Mesh
	tr      core.Transform
}

func newBody(layer Layer, x, y, scale float32) *testBody {
	return &testBody{
		layer:   layer,
		enabled: true,
		mesh:    square,
		tr:      core.NewTransform(core.V(x, y), core.V(scale, scale), 0, field),
	}
}

func (b *testBody) CanCollide() bool { return b.enabled }
func (b *testBody) Layer() Layer     { return b.layer }

func (b *testBody) Shape() (*mesh.Mesh, *core.Transform, bool) {
	if b.mesh == nil {
		return nil, nil, false
	}
	return b.mesh, &b.tr, true
}

func TestDetectOverlappingPair(t *testing.T) {
	bodies := []Body{
		newBody(LayerPlayer, 100, 100, 10),
		newBody(LayerAsteroid, 115, 100, 10),
		newBody(LayerAsteroid, 400, 400, 10),
	}
	pairs := Detect(bodies, DefaultMatrix())
	require.Len(t, pairs, 1)
	assert.Equal(t, Pair{I: 0, J: 1}, pairs[0])
}

func TestDetectOncePerPair(t *testing.T) {
	// Offset squares cross on two segment pairs; still a single report.
	bodies := []Body{
		newBody(LayerPlayer, 100, 100, 10),
		newBody(LayerEnemy, 105, 105, 10),
	}
	pairs := Detect(bodies, DefaultMatrix())
	assert.Equal(t, []Pair{{I: 0, J: 1}}, pairs)
}

func TestDetectRespectsMatrix(t *testing.T) {
	bodies := []Body{
		newBody(LayerBulletFromEnemy, 100, 100, 10),
		newBody(LayerBulletFromEnemy, 105, 100, 10),
		newBody(LayerEnemy, 100, 105, 10),
	}
	assert.Empty(t, Detect(bodies, DefaultMatrix()))
}

func TestDetectEnemyBulletHitsAsteroid(t *testing.T) {
	for _, bodies := range [][]Body{
		{newBody(LayerAsteroid, 100, 100, 10), newBody(LayerBulletFromEnemy, 105, 105, 10)},
		{newBody(LayerBulletFromEnemy, 105, 105, 10), newBody(LayerAsteroid, 100, 100, 10)},
	} {
		assert.Equal(t, []Pair{{I: 0, J: 1}}, Detect(bodies, DefaultMatrix()))
	}
}

func TestDetectSkipsOptOutAndNil(t *testing.T) {
	ghost := newBody(LayerPlayer, 100, 100, 10)
	ghost.enabled = false
	noShape := newBody(LayerPlayer, 100, 100, 10)
	noShape.mesh = nil

	bodies := []Body{
		ghost,
		nil,
		noShape,
		newBody(LayerAsteroid, 105, 100, 10),
	}
	assert.Empty(t, Detect(bodies, DefaultMatrix()))
}

func TestDetectContainedShapesDoNotTouch(t *testing.T) {
	// Only segments are tested: a body entirely inside another is not a hit.
	bodies := []Body{
		newBody(LayerPlayer, 100, 100, 50),
		newBody(LayerAsteroid, 100, 100, 5),
	}
	assert.Empty(t, Detect(bodies, DefaultMatrix()))
}

func TestMeshesTouchEmpty(t *testing.T) {
	tr := core.NewTransform(core.V(0, 0), core.V(1, 1), 0, field)
	assert.False(t, MeshesTouch(mesh.Empty(), &tr, square, &tr))
}

func TestBoundingRadiusContainsWorldPoints(t *testing.T) {
	tr := core.NewTransform(core.V(300, 200), core.V(20, -2), 1.1, field)
	r := BoundingRadius(square, &tr)
	for i := 0; i < square.Len(); i++ {
		s := square.Segment(i)
		for _, p := range []core.Vec2{s.Start, s.End} {
			d := core.Distance(tr.TransformPointToWorld(p), tr.Position())
			assert.LessOrEqual(t, d, r+1e-3)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(core.V(0, 0), 5, core.V(10, 0), 5), "tangent circles touch")
	assert.True(t, CirclesOverlap(core.V(0, 0), 5, core.V(3, 4), 0))
	assert.False(t, CirclesOverlap(core.V(0, 0), 5, core.V(10.5, 0), 5))
}

func TestMeshesTouchAtCircleBoundary(t *testing.T) {
	// Corners meet exactly where the bounding circles are tangent.
	a := core.NewTransform(core.V(100, 100), core.V(10, 10), 0, field)
	b := core.NewTransform(core.V(120, 120), core.V(10, 10), 0, field)
	assert.True(t, MeshesTouch(square, &a, square, &b))

	far := core.NewTransform(core.V(400, 400), core.V(10, 10), 0, field)
	assert.False(t, MeshesTouch(square, &a, square, &far))
}
