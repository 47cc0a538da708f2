package entity

import (
	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// BulletKind selects one of the two bullet configurations.
type BulletKind struct {
	Lifetime   float32 // seconds before self-destruct
	Collidable bool
}

var (
	// BulletStandard is the gameplay bullet.
	BulletStandard = BulletKind{Lifetime: 0.5, Collidable: true}
	// BulletTracer is a long-lived bullet that passes through everything.
	BulletTracer = BulletKind{Lifetime: 3.0, Collidable: false}
)

// BulletScale is the uniform scale bullets are spawned with.
const BulletScale float32 = 0.3

// Bullet flies along its facing at constant speed until its lifetime runs
// out or it hits something.
type Bullet struct {
	Base
	kind  BulletKind
	layer collision.Layer
	speed float32
	timer float32
	hit   bool
	dead  bool
}

// NewBullet creates a bullet. layer records who fired it.
func NewBullet(tr core.Transform, m *mesh.Mesh, speed float32, layer collision.Layer, kind BulletKind) *Bullet {
	return &Bullet{
		Base:  newBase(tr, m),
		kind:  kind,
		layer: layer,
		speed: speed,
	}
}

// Speed returns the constant flight speed.
func (b *Bullet) Speed() float32 { return b.speed }

// Kind returns the bullet configuration.
func (b *Bullet) Kind() BulletKind { return b.kind }

func (b *Bullet) Update(ctx *scene.Context) []scene.Event {
	if b.dead {
		return nil
	}
	b.tr.SetVelocity(b.tr.TransformDirToWorld(Forward).Normalized().Scale(b.speed))
	b.tr.UpdatePositionByVel(ctx.DT)

	b.timer += ctx.DT
	if b.hit || b.timer > b.kind.Lifetime {
		b.dead = true
		return []scene.Event{scene.DestroyEvent{ID: b.id}}
	}
	return nil
}

func (b *Bullet) CanCollide() bool       { return b.kind.Collidable && !b.dead }
func (b *Bullet) Layer() collision.Layer { return b.layer }

// OnCollision consumes the bullet; it is removed on its next update.
func (b *Bullet) OnCollision(collision.Layer) {
	b.hit = true
}

func (b *Bullet) Draw(c scene.Canvas) {
	color := ColorBulletFriend
	if b.layer == collision.LayerBulletFromEnemy {
		color = ColorBulletFoe
	}
	c.DrawMesh(b.mesh, &b.tr, color)
}
