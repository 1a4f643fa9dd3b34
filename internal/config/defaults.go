package config

import (
	_ "embed"
)

//go:embed defaults/pentris.yaml
var defaultPentrisYAML []byte

// DefaultPentrisConfig returns the built-in rules. It matches the embedded
// defaults/pentris.yaml.
func DefaultPentrisConfig() PentrisConfig {
	return PentrisConfig{
		Board: BoardConfig{
			Width:  13,
			Height: 27,
			Buffer: 2,
		},
		Queue: QueueConfig{
			Preview: 6,
		},
		Hold: HoldConfig{
			Slots:   1,
			PerTurn: 1,
		},
		Timing: TimingConfig{
			LockDelay:      0.5,
			AutoShiftDelay: 0.25,
			AutoShiftRate:  0.05,
			FastGravity:    0.05,
			GravityAlpha:   0.8,
			GravityBeta:    0.0035,
			Countdown:      3,
			WipeInterval:   0.05,
		},
		Difficulty: DifficultyConfig{
			StartLevel: 1,
		},
	}
}

// RelaxedPentrisConfig returns the relaxed variant: three hold slots that
// may all be used every turn.
func RelaxedPentrisConfig(base PentrisConfig) PentrisConfig {
	base.Hold.Slots = 3
	base.Hold.PerTurn = 3
	return base
}
