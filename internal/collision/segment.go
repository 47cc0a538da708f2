package collision

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Epsilon is the tolerance for orientation and bounding-box tests.
const Epsilon float32 = 1e-6

// orient returns cross(q-p, r-p): positive when r is left of p->q.
func orient(p, q, r core.Vec2) float32 {
	return q.Sub(p).Cross(r.Sub(p))
}

// onSegment reports whether p lies within the epsilon-inflated bounding box of a-b.
func onSegment(a, b, p core.Vec2) bool {
	minX := min(a.X, b.X) - Epsilon
	maxX := max(a.X, b.X) + Epsilon
	minY := min(a.Y, b.Y) - Epsilon
	maxY := max(a.Y, b.Y) + Epsilon
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// SegmentsIntersect reports whether segment a-b touches segment c-d.
//
// Proper crossings need strictly opposite orientations on both sides.
// Touching and collinear overlap are caught by the degenerate checks: an
// endpoint with near-zero orientation counts if it lies inside the other
// segment's bounding box.
func SegmentsIntersect(a, b, c, d core.Vec2) bool {
	o1 := orient(a, b, c)
	o2 := orient(a, b, d)
	o3 := orient(c, d, a)
	o4 := orient(c, d, b)

	if (o1 > Epsilon && o2 < -Epsilon || o1 < -Epsilon && o2 > Epsilon) &&
		(o3 > Epsilon && o4 < -Epsilon || o3 < -Epsilon && o4 > Epsilon) {
		return true
	}

	if abs32(o1) <= Epsilon && onSegment(a, b, c) {
		return true
	}
	if abs32(o2) <= Epsilon && onSegment(a, b, d) {
		return true
	}
	if abs32(o3) <= Epsilon && onSegment(c, d, a) {
		return true
	}
	if abs32(o4) <= Epsilon && onSegment(c, d, b) {
		return true
	}
	return false
}
