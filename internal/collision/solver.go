package collision

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
)

// Body is anything the solver can test.
type Body interface {
	// CanCollide reports whether collision checks apply at all.
	CanCollide() bool
	Layer() Layer
	// Shape returns the geometry in local space and the transform placing it
	// in the world. ok is false for bodies without geometry.
	Shape() (m *mesh.Mesh, t *core.Transform, ok bool)
}

// Pair holds the indices of two colliding bodies, I < J.
type Pair struct {
	I, J int
}

// Detect tests every unordered pair of bodies and returns the touching ones,
// at most once per pair, ordered by (I, J). Nil entries are skipped.
//
// Every allowed pair is visited; bodies whose bounding circles are apart are
// rejected before the segment test.
func Detect(bodies []Body, matrix *Matrix) []Pair {
	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		if a == nil || !a.CanCollide() {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if b == nil || !b.CanCollide() {
				continue
			}
			if !matrix.Allows(a.Layer(), b.Layer()) {
				continue
			}
			if Touching(a, b) {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}
	return pairs
}

// Touching runs the exact test between two bodies' world-space segments,
// stopping at the first intersecting segment pair.
func Touching(a, b Body) bool {
	ma, ta, ok := a.Shape()
	if !ok {
		return false
	}
	mb, tb, ok := b.Shape()
	if !ok {
		return false
	}
	return MeshesTouch(ma, ta, mb, tb)
}

// MeshesTouch reports whether any segment of ma under ta intersects any
// segment of mb under tb.
func MeshesTouch(ma *mesh.Mesh, ta *core.Transform, mb *mesh.Mesh, tb *core.Transform) bool {
	if ma.Len() == 0 || mb.Len() == 0 {
		return false
	}
	if !CirclesOverlap(ta.Position(), BoundingRadius(ma, ta), tb.Position(), BoundingRadius(mb, tb)) {
		return false
	}

	// Transform b once; a is transformed segment by segment.
	world := make([][2]core.Vec2, mb.Len())
	for k := range world {
		s := mb.Segment(k)
		world[k] = [2]core.Vec2{tb.TransformPointToWorld(s.Start), tb.TransformPointToWorld(s.End)}
	}

	for i := 0; i < ma.Len(); i++ {
		s := ma.Segment(i)
		p0 := ta.TransformPointToWorld(s.Start)
		p1 := ta.TransformPointToWorld(s.End)
		for _, w := range world {
			if SegmentsIntersect(p0, p1, w[0], w[1]) {
				return true
			}
		}
	}
	return false
}

// BoundingRadius returns a radius around t's position that contains every
// world-space point of m under t.
func BoundingRadius(m *mesh.Mesh, t *core.Transform) float32 {
	sc := t.Scale()
	return m.Radius() * max(abs32(sc.X), abs32(sc.Y))
}

// CirclesOverlap reports whether two circles touch. The comparison carries a
// small slack so float rounding never rejects a pair the exact test accepts.
func CirclesOverlap(pa core.Vec2, ra float32, pb core.Vec2, rb float32) bool {
	d := pa.Sub(pb)
	reach := ra + rb
	return d.Dot(d) <= reach*reach*(1+1e-4)+1e-4
}
