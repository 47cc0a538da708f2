// Package mesh holds immutable line-segment geometry shared by many objects.
package mesh

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Segment is a line in local space.
type Segment struct {
	Start core.Vec2
	End   core.Vec2
}

// Seg is shorthand for building a segment from coordinates.
func Seg(x0, y0, x1, y1 float32) Segment {
	return Segment{Start: core.V(x0, y0), End: core.V(x1, y1)}
}

// Mesh is a named, ordered list of segments. A Mesh is never modified after
// construction, so a single pointer is shared by every object that uses it.
//
// Filled only affects drawing; collision always tests the segment list.
type Mesh struct {
	name     string
	segments []Segment
	filled   bool
}

// New creates a mesh. The segment slice is copied.
func New(name string, segments []Segment, filled bool) *Mesh {
	return &Mesh{
		name:     name,
		segments: append([]Segment(nil), segments...),
		filled:   filled,
	}
}

var empty = &Mesh{name: "empty"}

// Empty returns the shared zero-segment mesh used when an asset is missing.
// It draws nothing and never collides.
func Empty() *Mesh {
	return empty
}

// Name returns the asset name.
func (m *Mesh) Name() string { return m.name }

// Filled reports whether the renderer should fill the outline.
func (m *Mesh) Filled() bool { return m.filled }

// Len returns the number of segments.
func (m *Mesh) Len() int { return len(m.segments) }

// Segment returns the i-th segment.
func (m *Mesh) Segment(i int) Segment { return m.segments[i] }

// Segments returns a copy of the segment list.
func (m *Mesh) Segments() []Segment {
	return append([]Segment(nil), m.segments...)
}

// Radius returns the largest distance of any endpoint from the local origin.
func (m *Mesh) Radius() float32 {
	var r float32
	for _, s := range m.segments {
		r = max(r, s.Start.Len(), s.End.Len())
	}
	return r
}
