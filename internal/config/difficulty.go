package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// StartLevelForPreset returns the starting level of a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 5
	default:
		return 1
	}
}

// ApplyPentrisPreset adjusts the configuration for a difficulty preset.
// Easy grants an extra hold, hard starts at a faster level and fixed keeps
// gravity at the starting level for the whole game.
func ApplyPentrisPreset(cfg *PentrisConfig, preset DifficultyPreset) {
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
	cfg.Difficulty.FixedGravity = preset == DifficultyFixed

	switch preset {
	case DifficultyEasy:
		cfg.Hold.Slots = max(cfg.Hold.Slots, 2)
		cfg.Hold.PerTurn = max(cfg.Hold.PerTurn, 2)
		cfg.Timing.LockDelay = max(cfg.Timing.LockDelay, 0.75)
	case DifficultyHard:
		cfg.Timing.LockDelay = min(cfg.Timing.LockDelay, 0.35)
	}
}

// GravityLevel returns the level whose gravity applies while the board is
// at level.
func (d DifficultyConfig) GravityLevel(level int) int {
	if d.FixedGravity {
		return d.StartLevel
	}
	return level
}
