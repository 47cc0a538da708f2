package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputAxesSmoothTowardKeys(t *testing.T) {
	in := NewInput()
	in.SetKey(KeyW, true)
	in.SetKey(KeyLeft, true)

	in.Update(0.1)
	// vertical weight 5: 0 + (1-0)*0.5
	assert.InDelta(t, 0.5, in.Vertical(), 1e-6)
	// horizontal weight 10: clamped to a full step
	assert.InDelta(t, -1, in.Horizontal(), 1e-6)
	assert.False(t, in.Fire())

	in.Update(0.1)
	assert.InDelta(t, 0.75, in.Vertical(), 1e-6)

	in.ReleaseAll()
	in.Update(0.1)
	assert.InDelta(t, 0.375, in.Vertical(), 1e-6)
	assert.InDelta(t, 0, in.Horizontal(), 1e-6)
}

func TestInputFireFollowsRawKey(t *testing.T) {
	in := NewInput()
	in.SetKey(KeySpace, true)
	in.Update(0.016)
	assert.True(t, in.Fire())

	in.SetKey(KeySpace, false)
	in.Update(0.016)
	assert.False(t, in.Fire())
}

func TestInputOpposingKeysCancel(t *testing.T) {
	in := NewInput()
	in.SetKey(KeyA, true)
	in.SetKey(KeyD, true)
	in.Update(1)
	assert.Equal(t, float32(0), in.Horizontal())
}
