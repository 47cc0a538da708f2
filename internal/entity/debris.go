package entity

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// DebrisLifetime is how long a debris piece lives.
const DebrisLifetime float32 = 1.5

// Debris is a purely cosmetic fragment. It never collides.
type Debris struct {
	Base
	dir   core.Vec2
	speed float32
	spin  float32
	timer float32
	dead  bool
}

// NewDebris creates a fragment flying along the transform's facing.
func NewDebris(tr core.Transform, m *mesh.Mesh, speed, spin float32) *Debris {
	d := &Debris{Base: newBase(tr, m), speed: speed, spin: spin}
	d.dir = d.forward()
	return d
}

// RandomDebris rolls speed in [150, 350) and spin in [-1, 1).
func RandomDebris(r *rand.Rand) (speed, spin float32) {
	return 150 + r.Float32()*200, r.Float32()*2 - 1
}

func (d *Debris) Update(ctx *scene.Context) []scene.Event {
	if d.dead {
		return nil
	}
	d.tr.AddRotation(d.spin * ctx.DT)
	d.tr.SetVelocity(d.dir.Scale(d.speed))
	d.tr.UpdatePositionByVel(ctx.DT)

	d.timer += ctx.DT
	if d.timer > DebrisLifetime {
		d.dead = true
		return []scene.Event{scene.DestroyEvent{ID: d.id}}
	}
	return nil
}

func (d *Debris) CanCollide() bool            { return false }
func (d *Debris) Layer() collision.Layer      { return collision.LayerPlayer }
func (d *Debris) OnCollision(collision.Layer) {}

func (d *Debris) Draw(c scene.Canvas) {
	c.DrawMesh(d.mesh, &d.tr, ColorDebris)
}
