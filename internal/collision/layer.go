// Package collision implements layer-gated, exact line-segment collision
// detection between meshes.
package collision

// Layer is a collision category. The set is closed.
type Layer uint8

const (
	LayerPlayer Layer = iota
	LayerAsteroid
	LayerBulletFromPlayer
	LayerBulletFromEnemy
	LayerEnemy

	// LayerCount is the number of layers; it sizes the matrix.
	LayerCount = 5
)

// String returns a human-readable name for the layer.
func (l Layer) String() string {
	switch l {
	case LayerPlayer:
		return "Player"
	case LayerAsteroid:
		return "Asteroid"
	case LayerBulletFromPlayer:
		return "BulletFromPlayer"
	case LayerBulletFromEnemy:
		return "BulletFromEnemy"
	case LayerEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Matrix says which layer pairs may collide. It is symmetric by construction:
// the only way to change an entry is Allow, which writes both halves.
type Matrix struct {
	cells [LayerCount][LayerCount]bool
}

// LayerPair is an unordered pair of layers.
type LayerPair [2]Layer

// NewMatrix builds a matrix allowing exactly the given pairs.
func NewMatrix(pairs ...LayerPair) *Matrix {
	m := &Matrix{}
	for _, p := range pairs {
		m.Allow(p[0], p[1], true)
	}
	return m
}

// DefaultMatrix returns the arcade's layer table:
//
//	            Player Asteroid BulletP BulletE Enemy
//	Player        -      x        -       x      x
//	Asteroid      x      -        x       x      x
//	BulletP       -      x        -       -      x
//	BulletE       x      x        -       -      -
//	Enemy         x      x        x       -      -
func DefaultMatrix() *Matrix {
	return NewMatrix(
		LayerPair{LayerPlayer, LayerAsteroid},
		LayerPair{LayerPlayer, LayerBulletFromEnemy},
		LayerPair{LayerPlayer, LayerEnemy},
		LayerPair{LayerAsteroid, LayerBulletFromPlayer},
		LayerPair{LayerAsteroid, LayerBulletFromEnemy},
		LayerPair{LayerAsteroid, LayerEnemy},
		LayerPair{LayerBulletFromPlayer, LayerEnemy},
	)
}

// Allow sets whether layers a and b may collide, in both directions.
func (m *Matrix) Allow(a, b Layer, allowed bool) {
	if a >= LayerCount || b >= LayerCount {
		return
	}
	m.cells[a][b] = allowed
	m.cells[b][a] = allowed
}

// Allows reports whether layers a and b may collide.
func (m *Matrix) Allows(a, b Layer) bool {
	if a >= LayerCount || b >= LayerCount {
		return false
	}
	return m.cells[a][b]
}
