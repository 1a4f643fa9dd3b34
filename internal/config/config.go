// Package config provides YAML-based rule configuration, difficulty
// presets and environment overrides for Pentris.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MinBoardSize is the smallest accepted board width and height.
const MinBoardSize = 6

// PentrisConfig contains every tunable rule of the game.
type PentrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Queue      QueueConfig      `yaml:"queue"`
	Hold       HoldConfig       `yaml:"hold"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sets the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Buffer int `yaml:"buffer"` // hidden rows above the field
}

// QueueConfig sets the preview length.
type QueueConfig struct {
	Preview int `yaml:"preview"`
}

// HoldConfig sets the hold capacity and how often it may be used.
type HoldConfig struct {
	Slots   int `yaml:"slots"`
	PerTurn int `yaml:"per_turn"`
}

// TimingConfig holds scheduler timings in seconds.
type TimingConfig struct {
	LockDelay      float64 `yaml:"lock_delay"`
	AutoShiftDelay float64 `yaml:"auto_shift_delay"`
	AutoShiftRate  float64 `yaml:"auto_shift_rate"`
	FastGravity    float64 `yaml:"fast_gravity"`
	GravityAlpha   float64 `yaml:"gravity_alpha"`
	GravityBeta    float64 `yaml:"gravity_beta"`
	Countdown      float64 `yaml:"countdown"` // pause before play starts or resumes
	WipeInterval   float64 `yaml:"wipe_interval"`
}

// DifficultyConfig controls the starting level and whether gravity keeps
// up with leveling.
type DifficultyConfig struct {
	StartLevel   int  `yaml:"start_level"`
	FixedGravity bool `yaml:"fixed_gravity"` // gravity stays at the start level
}

// Validate checks that the configuration describes a playable game.
func (c PentrisConfig) Validate() error {
	var errs []error
	if c.Board.Width < MinBoardSize {
		errs = append(errs, fmt.Errorf("board width %d is below %d", c.Board.Width, MinBoardSize))
	}
	if c.Board.Height < MinBoardSize {
		errs = append(errs, fmt.Errorf("board height %d is below %d", c.Board.Height, MinBoardSize))
	}
	if c.Board.Buffer < 0 {
		errs = append(errs, fmt.Errorf("board buffer %d is negative", c.Board.Buffer))
	}
	if c.Queue.Preview < 0 {
		errs = append(errs, fmt.Errorf("queue preview %d is negative", c.Queue.Preview))
	}
	if c.Hold.Slots < 1 {
		errs = append(errs, fmt.Errorf("hold slots %d is below 1", c.Hold.Slots))
	}
	if c.Hold.PerTurn < 0 {
		errs = append(errs, fmt.Errorf("hold per_turn %d is negative", c.Hold.PerTurn))
	}
	if c.Timing.GravityAlpha <= 0 || c.Timing.GravityAlpha > 1 {
		errs = append(errs, fmt.Errorf("gravity_alpha %g must be in (0,1]", c.Timing.GravityAlpha))
	}
	if c.Timing.LockDelay < 0 || c.Timing.AutoShiftDelay < 0 || c.Timing.AutoShiftRate < 0 ||
		c.Timing.FastGravity < 0 || c.Timing.Countdown < 0 || c.Timing.WipeInterval < 0 {
		errs = append(errs, errors.New("timings must not be negative"))
	}
	if c.Difficulty.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("start_level %d is below 1", c.Difficulty.StartLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c PentrisConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
