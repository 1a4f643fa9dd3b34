package pentris

import (
	"math"

	"github.com/JoshMDonato/Pentris/internal/config"
	"github.com/JoshMDonato/Pentris/internal/session"
)

// releaseWindow is how long a key counts as held after its last press.
// Terminals report presses and repeats but never releases.
const releaseWindow = 0.1

// labelTime is how long a scoring label stays in the HUD.
const labelTime = 1.5

// timing holds the configured delays converted to ticks.
type timing struct {
	rate       int
	lockDelay  int
	shiftDelay int
	shiftRate  int
	fast       int
	countdown  int
	wipe       int
	release    int
	label      int
	alpha      float64
	beta       float64
	difficulty config.DifficultyConfig
}

func newTiming(cfg config.PentrisConfig, rate int) timing {
	t := cfg.Timing
	return timing{
		rate:       rate,
		lockDelay:  ticks(t.LockDelay, rate, 0),
		shiftDelay: ticks(t.AutoShiftDelay, rate, 1),
		shiftRate:  ticks(t.AutoShiftRate, rate, 1),
		fast:       ticks(t.FastGravity, rate, 1),
		countdown:  ticks(t.Countdown, rate, 0),
		wipe:       ticks(t.WipeInterval, rate, 1),
		release:    ticks(releaseWindow, rate, 1),
		label:      ticks(labelTime, rate, 1),
		alpha:      t.GravityAlpha,
		beta:       t.GravityBeta,
		difficulty: cfg.Difficulty,
	}
}

// ticks converts seconds to whole ticks, never returning less than floor.
func ticks(seconds float64, rate, floor int) int {
	return max(int(math.Round(seconds*float64(rate))), floor)
}

// gravity returns the gravity interval in ticks at level.
func (t timing) gravity(level int) int {
	d := session.Gravity(t.difficulty.GravityLevel(level), t.alpha, t.beta)
	return ticks(d.Seconds(), t.rate, 1)
}

// key tracks whether a direction is held, given press events only.
type key struct {
	held  bool
	fresh bool // pressed this tick after being released
	idle  int  // ticks since the last press
}

func (k *key) update(pressed bool, release int) {
	k.fresh = false
	if pressed {
		if !k.held {
			k.held = true
			k.fresh = true
		}
		k.idle = 0
		return
	}
	if k.held {
		k.idle++
		if k.idle >= release {
			k.held = false
		}
	}
}
