package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid tunnel config")

// Validate checks that the configuration can drive a simulation without
// skipping collision tests or producing degenerate spacing.
func (c TunnelConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Rotation.DegreesPerSecond <= 0 {
		fail("rotation.degrees_per_second must be positive")
	}
	if c.Obstacles.SeedCount <= 0 {
		fail("obstacles.seed_count must be positive")
	}
	if c.Obstacles.AdvancePerSecond <= 0 {
		fail("obstacles.advance_per_second must be positive")
	}
	if c.NearZoneWidth() <= 0 {
		fail("obstacles.near_zone_distance must exceed despawn_distance")
	}
	if c.Timing.MaxStep <= 0 {
		fail("timing.max_step must be positive")
	}
	if c.Timing.MaxFrame < c.Timing.MaxStep {
		fail("timing.max_frame must be at least timing.max_step")
	}

	for level := 1; level <= 3; level++ {
		if _, ok := c.Level(level); !ok {
			fail("difficulty level %d missing", level)
		}
	}
	if len(c.Difficulties) != 3 {
		fail("expected 3 difficulty levels, got %d", len(c.Difficulties))
	}

	step := c.Timing.MaxStep.Seconds()
	for _, d := range c.Difficulties {
		if d.Spacing <= 0 || d.Speed <= 0 || d.Advance <= 0 {
			fail("difficulty %d: spacing, speed and advance must be positive", d.Level)
			continue
		}
		// An obstacle must land inside the near zone on at least one sub-step.
		if travel := c.Obstacles.AdvancePerSecond * d.Advance * step; travel >= c.NearZoneWidth() {
			fail("difficulty %d: %.3f units per step would skip the %.3f wide near zone", d.Level, travel, c.NearZoneWidth())
		}
		if turn := c.Rotation.DegreesPerSecond * d.Speed * step; turn >= 360 {
			fail("difficulty %d: %.1f degrees per step exceeds a full turn", d.Level, turn)
		}
	}

	return errors.Join(errs...)
}
