package core

// Bounds is the toroidal play-field: positions live in [Min, Max) on each axis.
type Bounds struct {
	Min, Max Vec2
}

// BoundsFromSize returns bounds spanning [0, w) x [0, h).
func BoundsFromSize(w, h int) Bounds {
	return Bounds{Max: V(float32(w), float32(h))}
}

// Center returns the middle of the field.
func (b Bounds) Center() Vec2 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Transform holds the spatial state of a simulated object.
// Bounds are fixed at construction; velocity is per-frame state set by the owner.
type Transform struct {
	position Vec2
	velocity Vec2
	scale    Vec2
	rotation float32
	bounds   Bounds
}

// NewTransform creates a transform with zero velocity.
func NewTransform(position, scale Vec2, rotation float32, bounds Bounds) Transform {
	return Transform{
		position: position,
		scale:    scale,
		rotation: rotation,
		bounds:   bounds,
	}
}

func (t *Transform) Position() Vec2    { return t.position }
func (t *Transform) Velocity() Vec2    { return t.velocity }
func (t *Transform) Scale() Vec2       { return t.scale }
func (t *Transform) Rotation() float32 { return t.rotation }
func (t *Transform) Bounds() Bounds    { return t.bounds }

// SetVelocity replaces the current velocity.
func (t *Transform) SetVelocity(v Vec2) {
	t.velocity = v
}

// AddRotation accumulates delta radians. Rotation is never normalized.
func (t *Transform) AddRotation(delta float32) {
	t.rotation += delta
}

// RotateTo sets the absolute rotation.
func (t *Transform) RotateTo(r float32) {
	t.rotation = r
}

// TransformPointToWorld maps a local point: scale, rotate, then translate.
func (t *Transform) TransformPointToWorld(local Vec2) Vec2 {
	return local.Mul(t.scale).Rotate(t.rotation).Add(t.position)
}

// TransformDirToWorld maps a local direction without translation.
func (t *Transform) TransformDirToWorld(dir Vec2) Vec2 {
	return dir.Mul(t.scale).Rotate(t.rotation)
}

// InverseTransformPoint maps a world point back into local space.
func (t *Transform) InverseTransformPoint(world Vec2) Vec2 {
	p := world.Sub(t.position).Rotate(-t.rotation)
	return V(p.X/t.scale.X, p.Y/t.scale.Y)
}

// UpdatePositionByVel integrates position by velocity*dt and wraps the result.
func (t *Transform) UpdatePositionByVel(dt float32) {
	t.UpdatePositionWrap(t.position.Add(t.velocity.Scale(dt)))
}

// UpdatePositionWrap sets the position, wrapping it onto the field.
//
// The wrap is a single step per axis: a candidate below Min gets Max added once,
// one at or above Max gets Max subtracted once. A displacement larger than the field
// span in one call leaves the position outside the bounds for that frame.
func (t *Transform) UpdatePositionWrap(p Vec2) {
	t.position = V(
		wrapOnce(p.X, t.bounds.Min.X, t.bounds.Max.X),
		wrapOnce(p.Y, t.bounds.Min.Y, t.bounds.Max.Y),
	)
}

func wrapOnce(v, lo, hi float32) float32 {
	if v < lo {
		return v + hi
	}
	if v >= hi {
		return v - hi
	}
	return v
}
