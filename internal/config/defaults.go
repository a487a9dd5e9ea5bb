package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tunnel.yaml
var defaultTunnelYAML []byte

// DefaultTunnelConfig returns the built-in tunnel configuration.
// It matches defaults/tunnel.yaml and is used when the embedded file cannot be parsed.
func DefaultTunnelConfig() TunnelConfig {
	return TunnelConfig{
		Rotation: RotationConfig{
			DegreesPerSecond: 300,
		},
		Obstacles: ObstacleConfig{
			SeedCount:        50,
			AdvancePerSecond: 12,
			DespawnDistance:  -1,
			NearZoneDistance: 1,
		},
		Timing: TimingConfig{
			MaxFrame: 100 * time.Millisecond,
			MaxStep:  20 * time.Millisecond,
		},
		Difficulties: []DifficultyLevel{
			{Level: 1, Name: "easy", Spacing: 11, Base: 16, Speed: 1.0, Advance: 1.0},
			{Level: 2, Name: "normal", Spacing: 16, Base: 40, Speed: 1.3, Advance: 1.6},
			{Level: 3, Name: "hard", Spacing: 28, Base: 58, Speed: 1.6, Advance: 2.4},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTunnelYAML
}
