// Package pentris drives a Pentris session from fixed simulation ticks.
// It owns the timers the core leaves to the caller: gravity, lock delay,
// auto-shift, the start countdown and the game-over wipe.
package pentris

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/JoshMDonato/Pentris/internal/board"
	"github.com/JoshMDonato/Pentris/internal/config"
	"github.com/JoshMDonato/Pentris/internal/core"
	"github.com/JoshMDonato/Pentris/internal/registry"
	"github.com/JoshMDonato/Pentris/internal/session"
)

// Variant IDs, also used as score table keys.
const (
	IDStandard = "pentris"
	IDRelaxed  = "pentris_relaxed"
)

// Mode selects the hold rules.
type Mode int

const (
	ModeStandard Mode = iota // one hold slot, one hold per turn
	ModeRelaxed              // three hold slots, three holds per turn
)

// Phase is the scheduler state.
type Phase string

const (
	PhaseCountdown Phase = "countdown"
	PhasePlaying   Phase = "playing"
	PhaseWipe      Phase = "wipe"
	PhaseOver      Phase = "over"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a preset by name. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes session lifecycle events to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(registry.Info{
		ID:          IDStandard,
		Title:       "Pentris",
		Description: "Five-cell falling blocks, one hold",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.Info{
		ID:          IDRelaxed,
		Title:       "Pentris (Relaxed)",
		Description: "Three hold slots, usable every turn",
	}, func() registry.Game {
		return NewRelaxed()
	})
}

// Game runs one Pentris session on the platform tick loop.
type Game struct {
	mode    Mode
	preset  config.DifficultyPreset // overrides the package preset when set
	cfg     config.PentrisConfig
	runtime core.RuntimeConfig
	sess    *session.Session
	timing  timing

	tick     uint64
	phase    Phase
	paused   bool
	tooSmall bool

	countdown int // ticks until play starts
	wipeWait  int

	gravityWait int
	lockWait    int
	locking     bool
	shiftWait   int

	left, right, soft key

	label      string // last scoring label shown in the HUD
	labelTicks int
}

// New creates a standard game.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewRelaxed creates a game with the relaxed hold rules.
func NewRelaxed() *Game {
	return &Game{mode: ModeRelaxed}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	if g.mode == ModeRelaxed {
		return IDRelaxed
	}
	return IDStandard
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRelaxed {
		return "Pentris (Relaxed)"
	}
	return "Pentris"
}

// SetDifficulty selects the preset for this game only. It takes effect on
// the next Reset.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// Reset loads the rules and starts a new game behind the countdown.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadPentris(configPath)
	if err != nil {
		logger.Warn("using default rules", "err", err)
		cfg = config.DefaultPentrisConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyPentrisPreset(&cfg, preset)
	}
	if g.mode == ModeRelaxed {
		cfg = config.RelaxedPentrisConfig(cfg)
	}
	g.cfg = cfg
	g.timing = newTiming(cfg, runtime.TickRate)

	g.sess = session.New(sessionConfig(cfg), runtime.Seed, session.WithLogger(logger))

	g.tick = 0
	g.paused = false
	g.label = ""
	g.labelTicks = 0
	g.left, g.right, g.soft = key{}, key{}, key{}
	g.resetDrop()
	g.startCountdown()
	g.checkScreenSize()
}

// Resize adopts a new screen size without touching the game in progress.
// Only the too-small check depends on the window.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.checkScreenSize()
}

func sessionConfig(cfg config.PentrisConfig) session.Config {
	return session.Config{
		Board: board.Config{
			Width:  cfg.Board.Width,
			Height: cfg.Board.Height,
			Buffer: cfg.Board.Buffer,
		},
		Preview:      cfg.Queue.Preview,
		HoldSlots:    cfg.Hold.Slots,
		HoldsPerTurn: cfg.Hold.PerTurn,
		StartLevel:   cfg.Difficulty.StartLevel,
		GravityAlpha: cfg.Timing.GravityAlpha,
		GravityBeta:  cfg.Timing.GravityBeta,
	}
}

func (g *Game) startCountdown() {
	g.phase = PhaseCountdown
	g.countdown = g.timing.countdown
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && (g.phase == PhaseCountdown || g.phase == PhasePlaying) {
		g.paused = !g.paused
		if !g.paused {
			g.startCountdown()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.labelTicks > 0 {
		g.labelTicks--
		if g.labelTicks == 0 {
			g.label = ""
		}
	}

	switch g.phase {
	case PhaseCountdown:
		g.countdown--
		if g.countdown <= 0 {
			g.phase = PhasePlaying
		}
	case PhasePlaying:
		g.play(in)
		if g.sess.GameOver() {
			g.phase = PhaseWipe
			g.wipeWait = g.timing.wipe
		}
	case PhaseWipe:
		g.wipeWait--
		if g.wipeWait <= 0 {
			g.wipeWait = g.timing.wipe
			b := g.sess.Board()
			if !b.WipeStep() || b.Wiped() {
				g.phase = PhaseOver
			}
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused || g.tooSmall || g.phase == PhaseCountdown,
	}
	if g.sess != nil {
		st.Score = g.sess.Score()
		st.Level = g.sess.Level()
		st.Lines = g.sess.Lines()
	}
	return st
}

// Session exposes the running session for read-only inspection.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Config returns the rules the current game was started with.
func (g *Game) Config() config.PentrisConfig {
	return g.cfg
}
