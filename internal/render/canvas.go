// Package render rasterises world-space meshes onto the character screen.
package render

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
)

// FillRune is used for the interior of filled meshes.
const FillRune = '#'

// Canvas maps the toroidal world onto a Screen. Lines crossing an edge of
// the field wrap to the opposite edge of the screen.
type Canvas struct {
	screen *core.Screen
	world  core.Bounds
}

// NewCanvas creates a canvas drawing the given world bounds onto screen.
func NewCanvas(screen *core.Screen, world core.Bounds) *Canvas {
	return &Canvas{screen: screen, world: world}
}

// Screen returns the target buffer.
func (c *Canvas) Screen() *core.Screen { return c.screen }

// SetWorld changes the mapped field.
func (c *Canvas) SetWorld(world core.Bounds) { c.world = world }

// ToCell converts a world point to fractional cell coordinates.
func (c *Canvas) ToCell(p core.Vec2) (float64, float64) {
	span := c.world.Max.Sub(c.world.Min)
	if span.X == 0 || span.Y == 0 {
		return 0, 0
	}
	x := float64(p.X-c.world.Min.X) / float64(span.X) * float64(c.screen.Width())
	y := float64(p.Y-c.world.Min.Y) / float64(span.Y) * float64(c.screen.Height())
	return x, y
}

func (c *Canvas) cell(p core.Vec2) (int, int) {
	x, y := c.ToCell(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

// DrawMesh draws m placed by t. Outline meshes are traced segment by
// segment; filled meshes are scan-filled instead.
func (c *Canvas) DrawMesh(m *mesh.Mesh, t *core.Transform, color core.Color) {
	if m == nil || m.Len() == 0 {
		return
	}
	if m.Filled() {
		c.fill(m, t, color)
		return
	}
	for i := 0; i < m.Len(); i++ {
		s := m.Segment(i)
		x0, y0 := c.cell(t.TransformPointToWorld(s.Start))
		x1, y1 := c.cell(t.TransformPointToWorld(s.End))
		c.screen.DrawLine(x0, y0, x1, y1, LineRune(x1-x0, y1-y0), color)
	}
}

// LineRune picks an ASCII glyph approximating a segment's slope in cells.
// Screen y grows downward.
func LineRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '*'
	case ady*2 < adx:
		return '-'
	case adx*2 < ady:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// fill scan-converts the mesh outline using the even-odd rule, sampling
// each row at its vertical centre.
func (c *Canvas) fill(m *mesh.Mesh, t *core.Transform, color core.Color) {
	type edge struct{ x0, y0, x1, y1 float64 }
	edges := make([]edge, 0, m.Len())
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < m.Len(); i++ {
		s := m.Segment(i)
		x0, y0 := c.ToCell(t.TransformPointToWorld(s.Start))
		x1, y1 := c.ToCell(t.TransformPointToWorld(s.End))
		edges = append(edges, edge{x0, y0, x1, y1})
		minY = min(minY, y0, y1)
		maxY = max(maxY, y0, y1)
	}

	var xs []float64
	for row := int(math.Floor(minY)); row <= int(math.Ceil(maxY)); row++ {
		sy := float64(row) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			if (e.y0 <= sy) == (e.y1 <= sy) {
				continue
			}
			xs = append(xs, e.x0+(sy-e.y0)*(e.x1-e.x0)/(e.y1-e.y0))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); float64(x)+0.5 <= xs[i+1]; x++ {
				c.plot(x, row, FillRune, color)
			}
		}
	}
}

func (c *Canvas) plot(x, y int, r rune, color core.Color) {
	c.screen.SetCell(core.WrapIndex(x, c.screen.Width()), core.WrapIndex(y, c.screen.Height()), r, color)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
