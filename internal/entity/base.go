// Package entity implements the concrete objects of the arcade: the player
// ship, bullets, asteroids, the enemy saucer and cosmetic debris.
//
// Entities never draw randomness themselves during construction; callers
// pass the rolled values in so scenes and tests control the outcome.
package entity

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// Forward is the local-space direction every mesh faces.
var Forward = core.V(1, 0)

// Palette.
const (
	ColorPlayer       = core.ColorBrightCyan
	ColorThruster     = core.ColorOrange
	ColorAsteroid     = core.ColorWhite
	ColorEnemy        = core.ColorMagenta
	ColorBulletFriend = core.ColorBrightYellow
	ColorBulletFoe    = core.ColorBrightRed
	ColorDebris       = core.ColorOrange
)

// Base carries the state every entity shares.
type Base struct {
	id   scene.ID
	tr   core.Transform
	mesh *mesh.Mesh
}

func newBase(tr core.Transform, m *mesh.Mesh) Base {
	if m == nil {
		m = mesh.Empty()
	}
	return Base{tr: tr, mesh: m}
}

func (b *Base) ID() scene.ID               { return b.id }
func (b *Base) SetID(id scene.ID)          { b.id = id }
func (b *Base) Position() core.Vec2        { return b.tr.Position() }
func (b *Base) Transform() *core.Transform { return &b.tr }
func (b *Base) Mesh() *mesh.Mesh           { return b.mesh }

// Shape exposes the collision geometry.
func (b *Base) Shape() (*mesh.Mesh, *core.Transform, bool) {
	return b.mesh, &b.tr, b.mesh.Len() > 0
}

// forward returns the unit world-space facing.
func (b *Base) forward() core.Vec2 {
	return b.tr.TransformDirToWorld(Forward).Normalized()
}
