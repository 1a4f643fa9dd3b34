// Package session runs one game of Pentris: it owns the board, the queue
// and the hold, and turns player commands into the spawn, lock, clear and
// score cycle. Timing is left to the caller.
package session

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JoshMDonato/Pentris/internal/board"
	"github.com/JoshMDonato/Pentris/internal/hold"
	"github.com/JoshMDonato/Pentris/internal/pentomino"
	"github.com/JoshMDonato/Pentris/internal/queue"
)

// Config describes the rules of a session.
type Config struct {
	Board        board.Config
	Preview      int
	HoldSlots    int
	HoldsPerTurn int
	StartLevel   int
	GravityAlpha float64 // base of the gravity curve at level 1
	GravityBeta  float64 // how fast the base shrinks per level
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		Board:        board.DefaultConfig(),
		Preview:      queue.DefaultPreview,
		HoldSlots:    hold.DefaultCapacity,
		HoldsPerTurn: 1,
		StartLevel:   1,
		GravityAlpha: 0.8,
		GravityBeta:  0.0035,
	}
}

// minGravity bounds Speed at very high levels.
const minGravity = time.Millisecond

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	cfg    Config
	board  *board.Board
	queue  *queue.Queue
	hold   *hold.Slot
	logger *log.Logger

	seed      int64
	holdsLeft int
	pieces    int
	gameOver  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes lifecycle events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session and starts its first game.
func New(cfg Config, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		board:  board.New(cfg.Board),
		hold:   hold.New(cfg.HoldSlots),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.NewGame(seed)
	return s
}

// NewGame clears everything and spawns the first piece.
func (s *Session) NewGame(seed int64) {
	s.seed = seed
	s.board.Reset(s.cfg.StartLevel)
	s.queue = queue.New(s.cfg.Preview, seed)
	s.hold.Reset()
	s.holdsLeft = s.cfg.HoldsPerTurn
	s.pieces = 0
	s.gameOver = false

	s.logger.Debug("new game", "seed", seed, "level", s.board.Level())
	s.Spawn()
}

// Spawn places the next queued piece. A blocked spawn ends the game.
func (s *Session) Spawn() bool {
	if s.gameOver {
		return false
	}
	return s.spawn(s.queue.Next())
}

func (s *Session) spawn(shape pentomino.Shape) bool {
	if !s.board.Spawn(shape) {
		s.gameOver = true
		s.logger.Debug("game over", "shape", shape, "score", s.board.Score(), "level", s.board.Level(), "pieces", s.pieces)
		return false
	}
	s.pieces++
	return true
}

func (s *Session) active() bool {
	if s.gameOver {
		return false
	}
	_, ok := s.board.Piece()
	return ok
}

// MoveLeft shifts the piece one column left.
func (s *Session) MoveLeft() bool {
	return s.active() && s.board.MoveLeft()
}

// MoveRight shifts the piece one column right.
func (s *Session) MoveRight() bool {
	return s.active() && s.board.MoveRight()
}

// RotateLeft turns the piece counter-clockwise.
func (s *Session) RotateLeft() bool {
	return s.active() && s.board.RotateLeft()
}

// RotateRight turns the piece clockwise.
func (s *Session) RotateRight() bool {
	return s.active() && s.board.RotateRight()
}

// SoftDrop moves the piece down one row and reports whether it is grounded.
// The piece does not lock; the caller decides when to call Lock.
func (s *Session) SoftDrop() (grounded bool) {
	if !s.active() {
		return true
	}
	return s.board.SoftDrop()
}

// HardDrop drops the piece to its shadow and locks it.
func (s *Session) HardDrop() board.Clear {
	if !s.active() {
		return board.Clear{}
	}
	s.board.HardDrop()
	return s.Lock()
}

// Lock settles the piece, clears lines, restores the hold allowance and
// spawns the next piece.
func (s *Session) Lock() board.Clear {
	if !s.active() || !s.board.Lock() {
		return board.Clear{}
	}

	level := s.board.Level()
	s.board.ClearLines()
	res := s.board.LastClear()
	if res.LevelUp {
		s.logger.Debug("level up", "from", level, "to", s.board.Level(), "lines", s.board.Lines())
	}

	s.holdsLeft = s.cfg.HoldsPerTurn
	s.Spawn()
	return res
}

// Hold sets the current piece aside and brings in the piece pushed out of
// the hold, or the next queued piece when none was pushed out. It fails
// once the allowance for this turn is used up.
func (s *Session) Hold() bool {
	if !s.active() || s.holdsLeft <= 0 {
		return false
	}
	shape, ok := s.board.Remove()
	if !ok {
		return false
	}
	s.holdsLeft--

	out := s.hold.Swap(shape)
	if out == pentomino.None {
		return s.Spawn()
	}
	return s.spawn(out)
}

// Speed returns the gravity interval at the current level.
func (s *Session) Speed() time.Duration {
	return Gravity(s.board.Level(), s.cfg.GravityAlpha, s.cfg.GravityBeta)
}

// Gravity returns (alpha - beta*(level-1))^(level-1) seconds.
func Gravity(level int, alpha, beta float64) time.Duration {
	n := float64(max(level, 1) - 1)
	base := alpha - beta*n
	if base <= 0 {
		return minGravity
	}
	d := time.Duration(math.Pow(base, n) * float64(time.Second))
	return max(d, minGravity)
}
