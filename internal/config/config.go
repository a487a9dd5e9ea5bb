// Package config provides YAML/INI tunnel tuning and difficulty presets.
package config

import "time"

// TunnelConfig contains every tunable of the tunnel simulation.
type TunnelConfig struct {
	Rotation     RotationConfig    `yaml:"rotation"`
	Obstacles    ObstacleConfig    `yaml:"obstacles"`
	Timing       TimingConfig      `yaml:"timing"`
	Difficulties []DifficultyLevel `yaml:"difficulties"`
}

// RotationConfig defines how fast the tunnel turns under player input.
type RotationConfig struct {
	DegreesPerSecond float64 `yaml:"degrees_per_second"` // At movement speed 1.0
}

// ObstacleConfig defines obstacle queue size, travel and zones.
type ObstacleConfig struct {
	SeedCount        int     `yaml:"seed_count"`         // Obstacles spawned at run start
	AdvancePerSecond float64 `yaml:"advance_per_second"` // Distance units per second at factor 1.0
	DespawnDistance  float64 `yaml:"despawn_distance"`   // Below this an obstacle is behind the camera
	NearZoneDistance float64 `yaml:"near_zone_distance"` // At or below this an obstacle can collide
}

// TimingConfig bounds how elapsed host time is fed into the simulation.
type TimingConfig struct {
	MaxFrame time.Duration `yaml:"max_frame"` // Longer frames are clamped (pause/resume spikes)
	MaxStep  time.Duration `yaml:"max_step"`  // Frames are split into sub-steps of at most this
}

// DifficultyLevel is one row of the difficulty lookup table.
type DifficultyLevel struct {
	Level   int     `yaml:"level"`
	Name    string  `yaml:"name"`
	Spacing float64 `yaml:"spacing"` // Distance between consecutive obstacles
	Base    float64 `yaml:"base"`    // Distance of the first obstacle
	Speed   float64 `yaml:"speed"`   // Movement speed: rotation and score multiplier
	Advance float64 `yaml:"advance"` // Obstacle approach multiplier
}

// Level returns the table row for the given level.
func (c TunnelConfig) Level(level int) (DifficultyLevel, bool) {
	for _, d := range c.Difficulties {
		if d.Level == level {
			return d, true
		}
	}
	return DifficultyLevel{}, false
}

// NearZoneWidth returns the length of the distance band in which collisions are tested.
func (c TunnelConfig) NearZoneWidth() float64 {
	return c.Obstacles.NearZoneDistance - c.Obstacles.DespawnDistance
}
