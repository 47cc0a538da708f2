// Package scene runs the per-frame simulation protocol: object updates,
// deferred structural events, collision detect-then-apply and scene switching.
package scene

// ID identifies a live object. IDs are assigned at spawn time and never reused.
type ID uint32

// IDAllocator hands out strictly increasing IDs starting at 1.
// Zero is never issued and marks an object that has not been spawned yet.
//
// The allocator is owned by the Director and shared by every scene it builds,
// so IDs stay unique across scene switches.
type IDAllocator struct {
	next ID
}

// NewIDAllocator returns an allocator whose first ID is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns a fresh ID.
func (a *IDAllocator) Next() ID {
	id := a.next
	a.next++
	return id
}

// Issued returns how many IDs have been handed out.
func (a *IDAllocator) Issued() int {
	return int(a.next - 1)
}
