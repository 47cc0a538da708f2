package scene

import (
	"github.com/vovakirdan/tui-asteroids/internal/collision"
)

// World owns the live objects of one scene and runs the structural part of a
// frame. Objects never mutate the collection directly: they return events
// which the world applies after every update has run.
type World struct {
	objects []Object
	ids     *IDAllocator
	matrix  *collision.Matrix
}

// NewWorld creates an empty world drawing IDs from ids.
// A nil matrix means collision.DefaultMatrix.
func NewWorld(ids *IDAllocator, matrix *collision.Matrix) *World {
	if matrix == nil {
		matrix = collision.DefaultMatrix()
	}
	return &World{ids: ids, matrix: matrix}
}

// Add assigns a fresh ID to o and appends it.
func (w *World) Add(o Object) ID {
	id := w.ids.Next()
	o.SetID(id)
	w.objects = append(w.objects, o)
	return id
}

// Remove deletes the first object with id, keeping the order of the rest.
// It reports whether anything was removed.
func (w *World) Remove(id ID) bool {
	i := w.index(id)
	if i < 0 {
		return false
	}
	copy(w.objects[i:], w.objects[i+1:])
	w.objects[len(w.objects)-1] = nil
	w.objects = w.objects[:len(w.objects)-1]
	return true
}

// Find returns the object with id.
func (w *World) Find(id ID) (Object, bool) {
	i := w.index(id)
	if i < 0 {
		return nil, false
	}
	return w.objects[i], true
}

func (w *World) index(id ID) int {
	for i, o := range w.objects {
		if o.ID() == id {
			return i
		}
	}
	return -1
}

// Len returns the number of live objects.
func (w *World) Len() int { return len(w.objects) }

// Objects returns the live objects in world order. The slice must not be
// modified by the caller.
func (w *World) Objects() []Object { return w.objects }

// Clear drops every object.
func (w *World) Clear() {
	clear(w.objects)
	w.objects = w.objects[:0]
}

// Step runs collect, structural apply, collision detect and collision apply,
// and returns the events gathered from object updates for domain handling.
func (w *World) Step(ctx *Context) []Event {
	events := w.Collect(ctx)
	w.Apply(events)
	w.DispatchCollisions(w.DetectCollisions())
	return events
}

// Collect updates every Updatable object in order and concatenates the
// events they return.
func (w *World) Collect(ctx *Context) []Event {
	var events []Event
	// Index loop: objects only change their own state here, never the slice.
	for i := 0; i < len(w.objects); i++ {
		if u, ok := w.objects[i].(Updatable); ok {
			events = append(events, u.Update(ctx)...)
		}
	}
	return events
}

// Apply walks events in emission order, performing spawns and destroys.
// Other events are left for the scene.
func (w *World) Apply(events []Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case SpawnEvent:
			if e.Object != nil {
				w.Add(e.Object)
			}
		case DestroyEvent:
			w.Remove(e.ID)
		}
	}
}

// DetectCollisions tests every collidable pair against the layer matrix and
// returns one event per touching pair.
func (w *World) DetectCollisions() []CollisionEvent {
	bodies := make([]collision.Body, len(w.objects))
	for i, o := range w.objects {
		if c, ok := o.(Collidable); ok {
			bodies[i] = c
		}
	}

	pairs := collision.Detect(bodies, w.matrix)
	if len(pairs) == 0 {
		return nil
	}
	out := make([]CollisionEvent, 0, len(pairs))
	for _, p := range pairs {
		a, b := bodies[p.I], bodies[p.J]
		out = append(out, CollisionEvent{
			A:      w.objects[p.I].ID(),
			B:      w.objects[p.J].ID(),
			LayerA: a.Layer(),
			LayerB: b.Layer(),
		})
	}
	return out
}

type idPair struct{ a, b ID }

// DispatchCollisions notifies both sides of every collision. Each side is
// looked up on its own; a side that no longer exists is skipped. A pair
// reported twice in one batch is only dispatched once.
func (w *World) DispatchCollisions(events []CollisionEvent) {
	seen := make(map[idPair]struct{}, len(events))
	for _, ev := range events {
		key := idPair{min(ev.A, ev.B), max(ev.A, ev.B)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		w.notify(ev.A, ev.LayerB)
		w.notify(ev.B, ev.LayerA)
	}
}

func (w *World) notify(id ID, other collision.Layer) {
	o, ok := w.Find(id)
	if !ok {
		return
	}
	if c, ok := o.(Collidable); ok {
		c.OnCollision(other)
	}
}

// Draw issues a draw call for every Drawable in world order.
func (w *World) Draw(c Canvas) {
	for _, o := range w.objects {
		if d, ok := o.(Drawable); ok {
			d.Draw(c)
		}
	}
}
