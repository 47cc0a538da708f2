package scene

import (
	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Event is a deferred request produced by an object update. Events live for a
// single frame. The set of implementations is closed.
type Event interface {
	event()
}

// SpawnEvent asks the world to add Object with a fresh ID.
type SpawnEvent struct {
	Object Object
}

// DestroyEvent asks the world to remove the object with ID.
type DestroyEvent struct {
	ID ID
}

// CollisionEvent reports that A and B touched this frame. Layers are captured
// at detection time so one side can still be notified when the other is gone.
type CollisionEvent struct {
	A, B           ID
	LayerA, LayerB collision.Layer
}

// DemolishEvent is emitted by an asteroid that was hit.
type DemolishEvent struct {
	ID    ID
	Pos   core.Vec2
	Scale float32
}

// PlayerDeathEvent is emitted when the player loses a life.
type PlayerDeathEvent struct{}

// SpawnDebrisEvent asks the scene for a cosmetic debris burst at Pos.
type SpawnDebrisEvent struct {
	Pos core.Vec2
}

// ShootEvent notifies that an object fired.
type ShootEvent struct {
	ID  ID
	Pos core.Vec2
}

func (SpawnEvent) event()       {}
func (DestroyEvent) event()     {}
func (CollisionEvent) event()   {}
func (DemolishEvent) event()    {}
func (PlayerDeathEvent) event() {}
func (SpawnDebrisEvent) event() {}
func (ShootEvent) event()       {}
