package entity

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// Enemy is the saucer. It crosses the field on a sine wave and sprays
// bullets in random directions.
type Enemy struct {
	Base
	cfg       config.EnemyConfig
	xDir      float32
	phase     float32
	shootTime float32
	hit       bool
	dead      bool
}

// NewEnemy creates a saucer travelling left (dir < 0) or right.
func NewEnemy(tr core.Transform, m *mesh.Mesh, dir int, cfg config.EnemyConfig) *Enemy {
	x := float32(1)
	if dir < 0 {
		x = -1
	}
	return &Enemy{Base: newBase(tr, m), cfg: cfg, xDir: x}
}

// RandomDirection returns -1 or 1.
func RandomDirection(r *rand.Rand) int {
	if r.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Direction returns the horizontal bias, -1 or 1.
func (e *Enemy) Direction() int { return int(e.xDir) }

func (e *Enemy) Update(ctx *scene.Context) []scene.Event {
	if e.dead {
		return nil
	}
	var events []scene.Event
	if e.hit {
		e.dead = true
		return append(events,
			scene.DestroyEvent{ID: e.id},
			scene.SpawnDebrisEvent{Pos: e.tr.Position()},
		)
	}

	e.phase += ctx.DT * 5
	e.shootTime += ctx.DT

	dir := core.V(e.xDir, core.Sin(e.phase)).Normalized()
	e.tr.SetVelocity(dir.Scale(e.cfg.Speed))
	e.tr.UpdatePositionByVel(ctx.DT)

	if e.shootTime >= e.cfg.ShootCooldown {
		e.shootTime = 0
		events = append(events, e.fire(ctx)...)
	}
	return events
}

func (e *Enemy) fire(ctx *scene.Context) []scene.Event {
	var heading float32
	if ctx.Rand != nil {
		heading = ctx.Rand.Float32() * 2 * math.Pi
	}
	origin := e.tr.TransformPointToWorld(muzzle)
	tr := core.NewTransform(origin, core.V(BulletScale, BulletScale), heading, e.tr.Bounds())
	b := NewBullet(tr, assets.MeshOr(ctx.Assets, "bullet"),
		e.cfg.BulletSpeed, collision.LayerBulletFromEnemy, BulletStandard)
	return []scene.Event{
		scene.SpawnEvent{Object: b},
		scene.ShootEvent{ID: e.id, Pos: origin},
	}
}

func (e *Enemy) CanCollide() bool       { return !e.dead }
func (e *Enemy) Layer() collision.Layer { return collision.LayerEnemy }

func (e *Enemy) OnCollision(other collision.Layer) {
	switch other {
	case collision.LayerBulletFromPlayer, collision.LayerAsteroid:
		e.hit = true
	}
}

func (e *Enemy) Draw(c scene.Canvas) {
	c.DrawMesh(e.mesh, &e.tr, ColorEnemy)
}
