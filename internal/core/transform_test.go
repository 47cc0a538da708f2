package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformPointToWorld(t *testing.T) {
	tr := NewTransform(V(100, 50), V(2, 2), math.Pi/2, BoundsFromSize(800, 600))

	// scale (1,0)->(2,0), rotate 90deg -> (0,2), translate -> (100,52)
	p := tr.TransformPointToWorld(V(1, 0))
	assert.InDelta(t, 100, p.X, 1e-4)
	assert.InDelta(t, 52, p.Y, 1e-4)

	d := tr.TransformDirToWorld(V(1, 0))
	assert.InDelta(t, 0, d.X, 1e-4)
	assert.InDelta(t, 2, d.Y, 1e-4)
}

func TestTransformInverseRoundTrip(t *testing.T) {
	tr := NewTransform(V(321, 123), V(0.3, 0.7), 1.234, BoundsFromSize(800, 600))

	local := V(-12.5, 40)
	back := tr.InverseTransformPoint(tr.TransformPointToWorld(local))
	assert.InDelta(t, local.X, back.X, 1e-3)
	assert.InDelta(t, local.Y, back.Y, 1e-3)
}

func TestTransformWrapSingleStep(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel Vec2
		dt       float32
		expected Vec2
	}{
		{"inside stays", V(100, 100), V(10, -10), 1, V(110, 90)},
		{"right edge wraps", V(790, 300), V(50, 0), 1, V(40, 300)},
		{"left edge wraps", V(10, 300), V(-50, 0), 1, V(760, 300)},
		{"bottom edge wraps", V(10, 590), V(0, 20), 1, V(10, 10)},
		{"exactly max wraps to min", V(799, 0), V(1, 0), 1, V(0, 0)},
		// Displacement beyond one span is not folded back completely.
		{"overshoot stays out of range", V(10, 10), V(-2000, 0), 1, V(-1190, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTransform(tc.pos, V(1, 1), 0, BoundsFromSize(800, 600))
			tr.SetVelocity(tc.vel)
			tr.UpdatePositionByVel(tc.dt)
			assert.InDelta(t, tc.expected.X, tr.Position().X, 1e-3)
			assert.InDelta(t, tc.expected.Y, tr.Position().Y, 1e-3)
		})
	}
}

func TestTransformRotation(t *testing.T) {
	tr := NewTransform(V(0, 0), V(1, 1), 0, BoundsFromSize(10, 10))
	tr.AddRotation(4)
	tr.AddRotation(4)
	assert.Equal(t, float32(8), tr.Rotation(), "rotation accumulates without normalization")

	tr.RotateTo(1.5)
	assert.Equal(t, float32(1.5), tr.Rotation())
}
