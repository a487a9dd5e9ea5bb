package tunnel

import (
	"fmt"
	"math"

	"github.com/vovakirdan/infinity-spectrum/internal/config"
)

// Difficulty is the run parameter selected in the menu.
type Difficulty int

const (
	DifficultyNone   Difficulty = 0
	DifficultyEasy   Difficulty = 1
	DifficultyNormal Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// basePassScore is awarded per passed obstacle at movement speed 1.0.
const basePassScore = 100

// Valid reports whether d is one of the selectable levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// String returns the preset name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Params are the per-difficulty constants of a run.
type Params struct {
	Name      string
	Spacing   float64 // Distance between consecutive spawns
	Base      float64 // Distance of the first spawn
	Speed     float64 // Movement speed (rotation multiplier)
	Advance   float64 // Approach multiplier
	PassScore int     // Points per passed obstacle
}

// Table maps each difficulty to its parameters.
type Table map[Difficulty]Params

// NewTable builds the lookup table from configuration.
func NewTable(cfg config.TunnelConfig) Table {
	t := make(Table, len(cfg.Difficulties))
	for _, d := range cfg.Difficulties {
		t[Difficulty(d.Level)] = Params{
			Name:      d.Name,
			Spacing:   d.Spacing,
			Base:      d.Base,
			Speed:     d.Speed,
			Advance:   d.Advance,
			PassScore: int(math.Round(basePassScore * d.Speed)),
		}
	}
	return t
}

// SpawnDistance returns where the obstacle at batch position i lands for the given offset.
func (p Params) SpawnDistance(i int, offset float64) float64 {
	return (float64(i)+offset)*p.Spacing + p.Base
}
