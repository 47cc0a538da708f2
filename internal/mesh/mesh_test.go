package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCopiesSegments(t *testing.T) {
	segs := []Segment{Seg(0, 0, 1, 0), Seg(1, 0, 0, 1)}
	m := New("tri", segs, true)

	segs[0] = Seg(9, 9, 9, 9)
	assert.Equal(t, Seg(0, 0, 1, 0), m.Segment(0), "mesh must not alias caller slice")

	out := m.Segments()
	out[1] = Seg(5, 5, 5, 5)
	assert.Equal(t, Seg(1, 0, 0, 1), m.Segment(1), "Segments() returns a copy")

	assert.Equal(t, "tri", m.Name())
	assert.True(t, m.Filled())
	assert.Equal(t, 2, m.Len())
}

func TestEmptyIsShared(t *testing.T) {
	assert.Same(t, Empty(), Empty())
	assert.Equal(t, 0, Empty().Len())
	assert.Equal(t, float32(0), Empty().Radius())
}

func TestRadius(t *testing.T) {
	m := New("box", []Segment{Seg(-3, -4, 3, -4), Seg(3, -4, 1, 1)}, false)
	assert.InDelta(t, 5, m.Radius(), 1e-6)
}
