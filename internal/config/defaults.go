package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Default returns the hard-coded configuration. It matches the embedded
// defaults/asteroids.yaml and is used when even that cannot be parsed.
func Default() Config {
	return Config{
		WindowSize: Size{X: 800, Y: 600},
		Player: PlayerConfig{
			MaxSpeed:        650,
			Acceleration:    250,
			Deceleration:    1,
			TurnRate:        5,
			ShootCooldown:   0.25,
			Invulnerability: 5,
			BulletSpeed:     2000,
		},
		Asteroids: AsteroidConfig{
			TargetCount: 5,
			SafeRadius:  120,
			MinSpeed:    30,
			MaxSpeed:    100,
			MinScale:    0.8,
			MaxScale:    1.0,
			Score:       10,
		},
		Enemy: EnemyConfig{
			Speed:            250,
			ShootCooldown:    0.25,
			BulletSpeed:      500,
			SpawnInterval:    15,
			MinSpawnDistance: 200,
			MaxAlive:         1,
			Score:            50,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:        0.5,
				SpawnIntervalReduction: 0.6,
				ExtraAsteroids:         4,
			},
		},
		Leaderboard: LeaderboardConfig{
			URL:     "http://127.0.0.1:8080/stats",
			Timeout: 5 * time.Second,
		},
	}
}
