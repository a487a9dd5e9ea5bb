package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the user and local directories.
const DefaultFileName = "tunnel.yaml"

// Load loads the tunnel configuration.
// Search order: customPath -> ~/.spectrum/tunnel.yaml -> ./configs/tunnel.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped when broken.
func Load(customPath string) (TunnelConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TunnelConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, filepath.Ext(customPath))
		if err != nil {
			return TunnelConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return TunnelConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(DefaultFileName), filepath.Join("configs", DefaultFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data, filepath.Ext(path)); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultTunnelYAML, ".yaml")
	if err != nil {
		return DefaultTunnelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a config file in the format implied by ext onto the defaults.
// ".ini" uses INI sections; anything else is treated as YAML.
func Parse(data []byte, ext string) (TunnelConfig, error) {
	cfg := DefaultTunnelConfig()

	switch strings.ToLower(ext) {
	case ".ini":
		if err := overlayINI(&cfg, data); err != nil {
			return TunnelConfig{}, fmt.Errorf("ini: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return TunnelConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TunnelConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// overlayINI applies INI keys onto cfg. Layout:
//
//	[rotation]     degrees_per_second
//	[obstacles]    seed_count, advance_per_second, despawn_distance, near_zone_distance
//	[timing]       max_frame, max_step (Go durations)
//	[difficulty.N] name, spacing, base, speed, advance
func overlayINI(cfg *TunnelConfig, data []byte) error {
	f, err := ini.Load(data)
	if err != nil {
		return err
	}

	if sec, err := f.GetSection("rotation"); err == nil {
		cfg.Rotation.DegreesPerSecond = sec.Key("degrees_per_second").MustFloat64(cfg.Rotation.DegreesPerSecond)
	}

	if sec, err := f.GetSection("obstacles"); err == nil {
		o := &cfg.Obstacles
		o.SeedCount = sec.Key("seed_count").MustInt(o.SeedCount)
		o.AdvancePerSecond = sec.Key("advance_per_second").MustFloat64(o.AdvancePerSecond)
		o.DespawnDistance = sec.Key("despawn_distance").MustFloat64(o.DespawnDistance)
		o.NearZoneDistance = sec.Key("near_zone_distance").MustFloat64(o.NearZoneDistance)
	}

	if sec, err := f.GetSection("timing"); err == nil {
		cfg.Timing.MaxFrame = sec.Key("max_frame").MustDuration(cfg.Timing.MaxFrame)
		cfg.Timing.MaxStep = sec.Key("max_step").MustDuration(cfg.Timing.MaxStep)
	}

	for i := range cfg.Difficulties {
		d := &cfg.Difficulties[i]
		sec, err := f.GetSection(fmt.Sprintf("difficulty.%d", d.Level))
		if err != nil {
			continue
		}
		if sec.HasKey("name") {
			d.Name = sec.Key("name").String()
		}
		d.Spacing = sec.Key("spacing").MustFloat64(d.Spacing)
		d.Base = sec.Key("base").MustFloat64(d.Base)
		d.Speed = sec.Key("speed").MustFloat64(d.Speed)
		d.Advance = sec.Key("advance").MustFloat64(d.Advance)
	}

	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spectrum", filename)
}
