package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// LevelForPreset returns the numeric level for a preset, or 0 if unknown.
func LevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// ParseDifficulty accepts a preset name ("easy") or a level number ("1").
// An empty string yields 0, meaning "choose in the menu".
func ParseDifficulty(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 3 {
			return 0, fmt.Errorf("config: difficulty %d out of range 1-3", n)
		}
		return n, nil
	}
	if level := LevelForPreset(DifficultyPreset(s)); level != 0 {
		return level, nil
	}
	return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or 1-3)", s)
}
