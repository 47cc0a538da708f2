package entity

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// Asteroid drifts and spins. When hit it asks the scene to demolish it.
type Asteroid struct {
	Base
	spin float32
	hit  bool
	dead bool
}

// NewAsteroid creates an asteroid with the given velocity and spin rate.
func NewAsteroid(tr core.Transform, m *mesh.Mesh, velocity core.Vec2, spin float32) *Asteroid {
	a := &Asteroid{Base: newBase(tr, m), spin: spin}
	a.tr.SetVelocity(velocity)
	return a
}

// RandomSpin rolls a spin rate in (-0.5, 0.5) radians per second.
func RandomSpin(r *rand.Rand) float32 {
	return (r.Float32()*2 - 1) * 0.5
}

// Spin returns the rotation rate.
func (a *Asteroid) Spin() float32 { return a.spin }

func (a *Asteroid) Update(ctx *scene.Context) []scene.Event {
	if a.dead {
		return nil
	}
	a.tr.AddRotation(a.spin * ctx.DT)
	a.tr.UpdatePositionByVel(ctx.DT)

	if !a.hit {
		return nil
	}
	a.dead = true
	return []scene.Event{
		scene.DemolishEvent{ID: a.id, Pos: a.tr.Position(), Scale: a.tr.Scale().Len()},
		scene.DestroyEvent{ID: a.id},
	}
}

func (a *Asteroid) CanCollide() bool       { return !a.dead }
func (a *Asteroid) Layer() collision.Layer { return collision.LayerAsteroid }

func (a *Asteroid) OnCollision(other collision.Layer) {
	switch other {
	case collision.LayerBulletFromPlayer, collision.LayerBulletFromEnemy,
		collision.LayerPlayer, collision.LayerEnemy:
		a.hit = true
	}
}

func (a *Asteroid) Draw(c scene.Canvas) {
	c.DrawMesh(a.mesh, &a.tr, ColorAsteroid)
}
