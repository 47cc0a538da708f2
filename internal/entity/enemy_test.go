package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

func newTestEnemy(t *testing.T, ctx *scene.Context, dir int) *Enemy {
	t.Helper()
	m, ok := ctx.Assets.Mesh("ufo_01")
	require.True(t, ok)
	e := NewEnemy(at(400, 300, 0.7, 0), m, dir, config.Default().Enemy)
	e.SetID(5)
	return e
}

func TestEnemyPatrol(t *testing.T) {
	ctx := testContext(t, 0.05)
	right := newTestEnemy(t, ctx, 1)
	left := newTestEnemy(t, ctx, -1)
	assert.Equal(t, 1, right.Direction())
	assert.Equal(t, -1, left.Direction())

	right.Update(ctx)
	left.Update(ctx)
	assert.Greater(t, right.Position().X, float32(400))
	assert.Less(t, left.Position().X, float32(400))
	assert.InDelta(t, 250, right.Transform().Velocity().Len(), 1e-3)

	// The sine term bends the path downward in the first half period.
	assert.Greater(t, right.Position().Y, float32(300))
}

func TestEnemyFiresOnCooldown(t *testing.T) {
	ctx := testContext(t, 0.1)
	e := newTestEnemy(t, ctx, 1)

	var bullets []*Bullet
	for i := 0; i < 5; i++ {
		bullets = append(bullets, spawned[*Bullet](e.Update(ctx))...)
	}
	// Only the third update reaches the 0.25 s cooldown; the timer then restarts.
	require.Len(t, bullets, 1)
	b := bullets[0]
	assert.Equal(t, collision.LayerBulletFromEnemy, b.Layer())
	assert.Equal(t, float32(500), b.Speed())
}

func TestEnemyDestroyedByPlayerBullet(t *testing.T) {
	ctx := testContext(t, 0.1)
	e := newTestEnemy(t, ctx, 1)

	e.OnCollision(collision.LayerBulletFromEnemy)
	e.OnCollision(collision.LayerPlayer)
	assert.Zero(t, destroysOf(e.Update(ctx), 5), "only player bullets and asteroids hurt")

	pos := e.Position()
	e.OnCollision(collision.LayerBulletFromPlayer)
	events := e.Update(ctx)
	assert.Equal(t, []scene.Event{
		scene.DestroyEvent{ID: 5},
		scene.SpawnDebrisEvent{Pos: pos},
	}, events)
	assert.False(t, e.CanCollide())
	assert.Empty(t, e.Update(ctx))
}

func TestRandomDirection(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seen[RandomDirection(r)] = true
	}
	assert.Equal(t, map[int]bool{-1: true, 1: true}, seen)
}
