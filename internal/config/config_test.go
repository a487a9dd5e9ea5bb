package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), ".yaml")
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTunnelConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultTunnelConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestDifficultyTable(t *testing.T) {
	cfg := DefaultTunnelConfig()

	tests := []struct {
		level         int
		spacing, base float64
		speed         float64
	}{
		{1, 11, 16, 1.0},
		{2, 16, 40, 1.3},
		{3, 28, 58, 1.6},
	}

	for _, tc := range tests {
		d, ok := cfg.Level(tc.level)
		if !ok {
			t.Fatalf("Level(%d) missing", tc.level)
		}
		if d.Spacing != tc.spacing || d.Base != tc.base || d.Speed != tc.speed {
			t.Errorf("Level(%d) = %+v, expected spacing=%v base=%v speed=%v", tc.level, d, tc.spacing, tc.base, tc.speed)
		}
	}

	if _, ok := cfg.Level(4); ok {
		t.Error("Level(4) should not exist")
	}
}

func TestParsePartialYAML(t *testing.T) {
	data := []byte("rotation:\n  degrees_per_second: 180\ntiming:\n  max_step: 10ms\n")

	cfg, err := Parse(data, ".yml")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Rotation.DegreesPerSecond != 180 {
		t.Errorf("DegreesPerSecond = %v, expected 180", cfg.Rotation.DegreesPerSecond)
	}
	if cfg.Timing.MaxStep != 10*time.Millisecond {
		t.Errorf("MaxStep = %v, expected 10ms", cfg.Timing.MaxStep)
	}
	if cfg.Obstacles.SeedCount != 50 {
		t.Errorf("unset keys should keep defaults, SeedCount = %d", cfg.Obstacles.SeedCount)
	}
}

func TestParseINI(t *testing.T) {
	data := []byte(`
[obstacles]
seed_count = 20
near_zone_distance = 1.5

[timing]
max_frame = 200ms

[difficulty.2]
name = medium
spacing = 18
`)

	cfg, err := Parse(data, ".ini")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Obstacles.SeedCount != 20 {
		t.Errorf("SeedCount = %d, expected 20", cfg.Obstacles.SeedCount)
	}
	if cfg.Obstacles.NearZoneDistance != 1.5 {
		t.Errorf("NearZoneDistance = %v, expected 1.5", cfg.Obstacles.NearZoneDistance)
	}
	if cfg.Timing.MaxFrame != 200*time.Millisecond {
		t.Errorf("MaxFrame = %v, expected 200ms", cfg.Timing.MaxFrame)
	}

	d, _ := cfg.Level(2)
	if d.Name != "medium" || d.Spacing != 18 || d.Base != 40 {
		t.Errorf("Level(2) = %+v, expected name=medium spacing=18 base=40", d)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidateRejectsTunneling(t *testing.T) {
	cfg := DefaultTunnelConfig()
	cfg.Timing.MaxStep = time.Second
	cfg.Timing.MaxFrame = time.Second

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should reject a step that skips the near zone")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error should wrap ErrInvalid, got %v", err)
	}
}

func TestValidateRejectsBrokenTable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TunnelConfig)
	}{
		{"missing level", func(c *TunnelConfig) { c.Difficulties = c.Difficulties[:2] }},
		{"zero spacing", func(c *TunnelConfig) { c.Difficulties[0].Spacing = 0 }},
		{"inverted zone", func(c *TunnelConfig) { c.Obstacles.NearZoneDistance = -2 }},
		{"no seed", func(c *TunnelConfig) { c.Obstacles.SeedCount = 0 }},
		{"frame shorter than step", func(c *TunnelConfig) { c.Timing.MaxFrame = time.Millisecond }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTunnelConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("obstacles:\n  seed_count: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(good)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Obstacles.SeedCount != 10 {
		t.Errorf("SeedCount = %d, expected 10", cfg.Obstacles.SeedCount)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing:\n  max_step: 5s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of an invalid config should wrap ErrInvalid, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultTunnelConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data, ".yaml")
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTunnelConfig()) {
		t.Error("marshalled config should parse back to the defaults")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"easy", 1, false},
		{"Normal", 2, false},
		{" hard ", 3, false},
		{"2", 2, false},
		{"4", 0, true},
		{"0", 0, true},
		{"insane", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDifficulty(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseDifficulty(%q) = %d, expected %d", tc.in, got, tc.want)
			}
		})
	}
}
