package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or
// elapsed seconds.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an asteroid base speed by the current level.
func (d *DifficultyManager) Speed(base float32, score int, elapsed float64) float32 {
	level := d.Level(score, elapsed)
	// Speed increases from base to base * (1 + speedMultiplier)
	return base * float32(1.0+level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval shortens the enemy spawn interval as difficulty rises.
func (d *DifficultyManager) SpawnInterval(base float32, score int, elapsed float64) float32 {
	level := d.Level(score, elapsed)
	cut := clampF(level*d.cfg.Scaling.SpawnIntervalReduction, 0, 0.9)
	result := base * float32(1.0-cut)
	if result < 1 { // Keep at least a second between saucers
		result = 1
	}
	return result
}

// AsteroidTarget raises the number of asteroids kept on the field.
func (d *DifficultyManager) AsteroidTarget(base int, score int, elapsed float64) int {
	level := d.Level(score, elapsed)
	return base + int(level*float64(d.cfg.Scaling.ExtraAsteroids))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
