package scene

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
)

// Object is anything living in a World. Capabilities are opted into by also
// implementing Drawable, Updatable or Collidable.
type Object interface {
	ID() ID
	SetID(ID)
	Position() core.Vec2
}

// Canvas receives draw calls. The platform layer rasterises them.
type Canvas interface {
	DrawMesh(m *mesh.Mesh, t *core.Transform, c core.Color)
}

// Drawable objects are drawn once per frame in world order.
type Drawable interface {
	Object
	Draw(c Canvas)
}

// Updatable objects advance their own state and may request changes to the
// world through the returned events. They must not touch other objects.
type Updatable interface {
	Object
	Update(ctx *Context) []Event
}

// Collidable objects take part in collision detection.
type Collidable interface {
	Object
	collision.Body
	OnCollision(other collision.Layer)
}

// Env holds the collaborators shared by every scene a Director creates.
type Env struct {
	IDs    *IDAllocator
	Config *config.Config
	Assets assets.Lookup
	Rand   *rand.Rand
}

// Context is passed to object and scene updates for one frame.
type Context struct {
	*Env
	DT    float32
	Input *core.Input
}

// Bounds returns the toroidal field for the configured window size.
func (e *Env) Bounds() core.Bounds {
	if e.Config == nil {
		cfg := config.Default()
		return cfg.Bounds()
	}
	return e.Config.Bounds()
}
