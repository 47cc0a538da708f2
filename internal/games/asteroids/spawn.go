package asteroids

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
)

const (
	// MinFragmentScale is the smallest child scale still worth spawning.
	MinFragmentScale float32 = 0.15
	// fragmentRatio sets the lower scale bound of a child relative to the upper.
	fragmentRatio float32 = 0.55

	// enemyScale is the saucer size.
	enemyScale float32 = 0.7
	// enemySpawnAttempts bounds the search for a free spot per spawn tick.
	enemySpawnAttempts = 8
	// safeSpawnAttempts bounds the search for a spot away from the player.
	safeSpawnAttempts = 64

	debrisMin = 4
	debrisMax = 8 // exclusive
)

// AsteroidMeshes are the rock outlines picked at random.
var AsteroidMeshes = []string{"asteroid_01", "asteroid_02", "asteroid_03", "asteroid_04"}

// Fragments returns the scales of the children a demolished asteroid of
// scale s breaks into. The children span [s*0.275, s*0.5); when the lower
// bound drops under MinFragmentScale the rock is spent and nothing spawns.
// Otherwise there are two or three children.
func Fragments(r *rand.Rand, s float32) []float32 {
	hi := s / 2
	lo := hi * fragmentRatio
	if lo < MinFragmentScale {
		return nil
	}
	n := 2 + r.IntN(2)
	out := make([]float32, n)
	for i := range out {
		out[i] = randRange(r, lo, hi)
	}
	return out
}

func randRange(r *rand.Rand, lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}

// randomPoint returns a uniform point inside b.
func randomPoint(r *rand.Rand, b core.Bounds) core.Vec2 {
	return core.V(randRange(r, b.Min.X, b.Max.X), randRange(r, b.Min.Y, b.Max.Y))
}

// pointAwayFrom looks for a point at least minDist from every avoid point.
// It gives up after attempts tries and reports false.
func pointAwayFrom(r *rand.Rand, b core.Bounds, avoid []core.Vec2, minDist float32, attempts int) (core.Vec2, bool) {
	for range attempts {
		p := randomPoint(r, b)
		free := true
		for _, a := range avoid {
			if core.Distance(p, a) < minDist {
				free = false
				break
			}
		}
		if free {
			return p, true
		}
	}
	return core.Vec2{}, false
}

// asteroidVelocity rolls a drift: each component in [-1, 1) times a speed in
// [MinSpeed, MaxSpeed), scaled by mult.
func asteroidVelocity(r *rand.Rand, cfg config.AsteroidConfig, mult float32) core.Vec2 {
	dir := core.V(r.Float32()*2-1, r.Float32()*2-1)
	return dir.Scale(randRange(r, cfg.MinSpeed, cfg.MaxSpeed) * mult)
}

// newAsteroid rolls every random property of a rock of the given scale.
func newAsteroid(r *rand.Rand, meshes []*mesh.Mesh, pos core.Vec2, scale float32, b core.Bounds, vel core.Vec2) *entity.Asteroid {
	var m *mesh.Mesh
	if len(meshes) > 0 {
		m = meshes[r.IntN(len(meshes))]
	}
	tr := core.NewTransform(pos, core.V(scale, scale), r.Float32()*360, b)
	return entity.NewAsteroid(tr, m, vel, entity.RandomSpin(r))
}

// newDebrisBurst returns 4 to 7 debris pieces flying out of pos.
func newDebrisBurst(r *rand.Rand, m *mesh.Mesh, pos core.Vec2, b core.Bounds) []*entity.Debris {
	n := debrisMin + r.IntN(debrisMax-debrisMin)
	out := make([]*entity.Debris, n)
	for i := range out {
		speed, spin := entity.RandomDebris(r)
		tr := core.NewTransform(pos, core.V(1, 1), r.Float32()*2*math.Pi, b)
		out[i] = entity.NewDebris(tr, m, speed, spin)
	}
	return out
}
