// Package config provides YAML-based configuration loading and difficulty
// management for the asteroids arcade.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// Config is the full persisted configuration record.
type Config struct {
	WindowSize  Size              `yaml:"window_size"`
	Player      PlayerConfig      `yaml:"player"`
	Asteroids   AsteroidConfig    `yaml:"asteroids"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// Size is a 2D integer extent in world units.
type Size struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlayerConfig tunes the ship.
type PlayerConfig struct {
	MaxSpeed        float32 `yaml:"max_speed"`
	Acceleration    float32 `yaml:"acceleration"`
	Deceleration    float32 `yaml:"deceleration"`
	TurnRate        float32 `yaml:"turn_rate"`       // radians per second at full input
	ShootCooldown   float32 `yaml:"shoot_cooldown"`  // seconds
	Invulnerability float32 `yaml:"invulnerability"` // seconds after a death
	BulletSpeed     float32 `yaml:"bullet_speed"`    // added to the ship speed
}

// AsteroidConfig tunes the asteroid field.
type AsteroidConfig struct {
	TargetCount int     `yaml:"target_count"`
	SafeRadius  float32 `yaml:"safe_radius"` // minimum spawn distance from the player
	MinSpeed    float32 `yaml:"min_speed"`
	MaxSpeed    float32 `yaml:"max_speed"`
	MinScale    float32 `yaml:"min_scale"`
	MaxScale    float32 `yaml:"max_scale"`
	Score       int     `yaml:"score"`
}

// EnemyConfig tunes the saucer.
type EnemyConfig struct {
	Speed            float32 `yaml:"speed"`
	ShootCooldown    float32 `yaml:"shoot_cooldown"`
	BulletSpeed      float32 `yaml:"bullet_speed"`
	SpawnInterval    float32 `yaml:"spawn_interval"`
	MinSpawnDistance float32 `yaml:"min_spawn_distance"`
	MaxAlive         int     `yaml:"max_alive"`
	Score            int     `yaml:"score"`
}

// GameplayConfig holds round rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// LeaderboardConfig points the client at a score server.
type LeaderboardConfig struct {
	URL      string        `yaml:"url"`
	Timeout  time.Duration `yaml:"timeout"`
	Nickname string        `yaml:"nickname"`
}

// Bounds returns the toroidal field spanned by the window size.
func (c *Config) Bounds() core.Bounds {
	return core.BoundsFromSize(c.WindowSize.X, c.WindowSize.Y)
}

// Validate checks the values the simulation relies on.
func (c *Config) Validate() error {
	switch {
	case c.WindowSize.X <= 0 || c.WindowSize.Y <= 0:
		return fmt.Errorf("%w: window_size must be positive, got %dx%d", ErrInvalid, c.WindowSize.X, c.WindowSize.Y)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: gameplay.lives must be positive", ErrInvalid)
	case c.Asteroids.MinScale <= 0 || c.Asteroids.MaxScale < c.Asteroids.MinScale:
		return fmt.Errorf("%w: asteroid scale range [%g, %g)", ErrInvalid, c.Asteroids.MinScale, c.Asteroids.MaxScale)
	case c.Asteroids.MaxSpeed < c.Asteroids.MinSpeed:
		return fmt.Errorf("%w: asteroid speed range [%g, %g)", ErrInvalid, c.Asteroids.MinSpeed, c.Asteroids.MaxSpeed)
	case c.Player.ShootCooldown < 0 || c.Enemy.ShootCooldown < 0:
		return fmt.Errorf("%w: cooldowns must not be negative", ErrInvalid)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier        float64 `yaml:"speed_multiplier"`         // added to asteroid speed at max difficulty
	SpawnIntervalReduction float64 `yaml:"spawn_interval_reduction"` // fraction cut from the enemy spawn interval at max difficulty
	ExtraAsteroids         int     `yaml:"extra_asteroids"`          // added to the asteroid target at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemy.SpawnInterval *= 1.5
		cfg.Enemy.ShootCooldown *= 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemy.SpawnInterval *= 0.6
		cfg.Asteroids.TargetCount += 2
	}
}
