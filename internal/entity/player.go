package entity

import (
	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// PlayerScale is the uniform scale of the ship.
const PlayerScale float32 = 0.5

// muzzle is where bullets leave the ship, in local space.
var muzzle = core.V(50, 0)

// Player is the ship steered by the input axes.
type Player struct {
	Base
	cfg config.PlayerConfig

	accel      float32 // ramps 0..1 while thrusting
	shootTime  float32
	godTime    float32
	globalTime float32

	hit     bool
	godMode bool
}

// NewPlayer creates the ship with the given tuning.
func NewPlayer(tr core.Transform, m *mesh.Mesh, cfg config.PlayerConfig) *Player {
	return &Player{
		Base:      newBase(tr, m),
		cfg:       cfg,
		shootTime: cfg.ShootCooldown, // ready to fire at once
	}
}

// Invulnerable reports whether the post-death grace period is active.
func (p *Player) Invulnerable() bool { return p.godMode }

func (p *Player) Update(ctx *scene.Context) []scene.Event {
	var events []scene.Event
	dt := ctx.DT

	if p.hit {
		p.hit = false
		p.tr.SetVelocity(core.Vec2{})
		p.tr.UpdatePositionWrap(p.tr.Bounds().Center())
		p.accel = 0
		p.godTime = 0
		p.godMode = true
		events = append(events, scene.PlayerDeathEvent{})
	}

	if p.godMode {
		p.godTime += dt
		if p.godTime > p.cfg.Invulnerability {
			p.godMode = false
		}
	}

	p.globalTime += dt
	p.tr.AddRotation(dt * p.cfg.TurnRate * ctx.Input.Horizontal())

	if ctx.Input.Vertical() > 0.5 {
		p.thrust(dt)
	} else {
		p.accel = 0
		t := core.ClampF32(p.cfg.Deceleration*dt, 0, 1)
		p.tr.SetVelocity(p.tr.Velocity().Lerp(core.Vec2{}, t))
	}
	p.tr.UpdatePositionByVel(dt)

	p.shootTime += dt
	if ctx.Input.Fire() && p.shootTime >= p.cfg.ShootCooldown {
		p.shootTime = 0
		events = append(events, p.fire(ctx)...)
	}
	return events
}

func (p *Player) thrust(dt float32) {
	p.accel = min(p.accel+5*dt, 1)
	accel := p.accel * p.cfg.Acceleration
	forward := p.forward()

	v := p.tr.Velocity()
	// Thrusting against the current heading brakes twice as hard.
	if v.Len() > 0 && v.Dot(forward) < 0 {
		accel *= 2
	}
	v = v.Add(forward.Scale(accel * dt))

	if speed := v.Len(); speed > p.cfg.MaxSpeed {
		v = v.Scale(p.cfg.MaxSpeed / speed)
	}
	p.tr.SetVelocity(v)
}

func (p *Player) fire(ctx *scene.Context) []scene.Event {
	origin := p.tr.TransformPointToWorld(muzzle)
	tr := core.NewTransform(origin, core.V(BulletScale, BulletScale), p.tr.Rotation(), p.tr.Bounds())
	b := NewBullet(tr, assets.MeshOr(ctx.Assets, "bullet"),
		p.tr.Velocity().Len()+p.cfg.BulletSpeed, collision.LayerBulletFromPlayer, BulletStandard)
	return []scene.Event{
		scene.SpawnEvent{Object: b},
		scene.ShootEvent{ID: p.id, Pos: origin},
	}
}

func (p *Player) CanCollide() bool       { return true }
func (p *Player) Layer() collision.Layer { return collision.LayerPlayer }

// OnCollision registers a hit unless the ship is invulnerable.
func (p *Player) OnCollision(other collision.Layer) {
	if p.godMode {
		return
	}
	switch other {
	case collision.LayerBulletFromEnemy, collision.LayerAsteroid, collision.LayerEnemy:
		p.hit = true
	}
}

// Draw blinks the ship while invulnerable and adds a flame that grows
// with speed.
func (p *Player) Draw(c scene.Canvas) {
	if p.godMode && core.Sin(p.globalTime*20) > 0.5 {
		return
	}
	c.DrawMesh(p.mesh, &p.tr, ColorPlayer)
	c.DrawMesh(thrusterMesh(-p.tr.Velocity().Len()/5, core.Sin(p.globalTime*20)*5), &p.tr, ColorThruster)
}

// thrusterMesh builds the flame behind the ship's tail.
func thrusterMesh(length, wobble float32) *mesh.Mesh {
	const tail = -35
	return mesh.New("thruster", []mesh.Segment{
		mesh.Seg(tail, 30, tail+length, wobble),
		mesh.Seg(tail, -30, tail+length, wobble),
	}, false)
}
