package session

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

func currentShape(t *testing.T, s *Session) pentomino.Shape {
	t.Helper()
	p, ok := s.Piece()
	require.True(t, ok)
	return p.Shape
}

func TestNewSession(t *testing.T) {
	s := New(DefaultConfig(), 1)

	assert.False(t, s.GameOver())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 5, s.LinesRemaining())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Pieces())
	assert.Len(t, s.Preview(), 6)
	assert.Equal(t, []pentomino.Shape{pentomino.None}, s.Held())
	assert.Equal(t, 1, s.HoldsLeft())
	assert.True(t, currentShape(t, s).Valid())
}

func TestStartLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartLevel = 5
	s := New(cfg, 1)

	assert.Equal(t, 5, s.Level())
	assert.Equal(t, 25, s.LinesRemaining())
}

func TestSpawnFollowsPreview(t *testing.T) {
	s := New(DefaultConfig(), 7)

	for range 20 {
		next := s.Preview()[0]
		s.HardDrop()
		require.False(t, s.GameOver())
		assert.Equal(t, next, currentShape(t, s))
	}
}

func TestHardDropLocksAndSpawns(t *testing.T) {
	s := New(DefaultConfig(), 3)
	first := currentShape(t, s)

	res := s.HardDrop()
	assert.Equal(t, 0, res.Lines)
	assert.Equal(t, 2, s.Pieces())
	assert.Greater(t, s.Score(), 0)

	p, ok := s.Piece()
	require.True(t, ok)
	assert.Equal(t, 0, p.Cells[0].Y-pentomino.Offsets(p.Shape)[0].Y)

	found := false
	for x := 0; x < s.Board().Width(); x++ {
		c, ok := s.Cell(x, s.Board().Height()-1)
		if ok && !c.Alive && c.Color == pentomino.Tint(first) {
			found = true
		}
	}
	assert.True(t, found, "first piece settled on the floor")
}

func TestHoldSwapSequence(t *testing.T) {
	s := New(DefaultConfig(), 11)
	first := currentShape(t, s)
	next := s.Preview()[0]

	require.True(t, s.Hold())
	assert.Equal(t, []pentomino.Shape{first}, s.Held())
	assert.Equal(t, next, currentShape(t, s), "empty hold pulls from the queue")
	assert.Equal(t, 0, s.HoldsLeft())

	assert.False(t, s.Hold(), "one hold per turn")

	s.HardDrop()
	assert.Equal(t, 1, s.HoldsLeft(), "locking restores the allowance")

	third := currentShape(t, s)
	require.True(t, s.Hold())
	assert.Equal(t, first, currentShape(t, s), "held piece comes back")
	assert.Equal(t, []pentomino.Shape{third}, s.Held())
}

func TestHoldRelaxed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HoldSlots = 3
	cfg.HoldsPerTurn = 3
	s := New(cfg, 5)

	var held []pentomino.Shape
	for range 3 {
		held = append(held, currentShape(t, s))
		require.True(t, s.Hold())
	}
	assert.Equal(t, held, s.Held())
	assert.False(t, s.Hold())

	s.HardDrop()
	require.True(t, s.Hold())
	assert.Equal(t, held[0], currentShape(t, s), "oldest slot is released first")
}

func TestHoldRespawnsAtTop(t *testing.T) {
	s := New(DefaultConfig(), 2)
	for range 5 {
		s.SoftDrop()
	}
	s.RotateLeft()
	require.True(t, s.Hold())

	p, ok := s.Piece()
	require.True(t, ok)
	assert.Equal(t, 0, p.Orientation)
}

func TestGameOver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(DefaultConfig(), 9, WithLogger(logger))

	for i := 0; i < 500 && !s.GameOver(); i++ {
		s.HardDrop()
	}
	require.True(t, s.GameOver())
	assert.Contains(t, buf.String(), "game over")

	_, ok := s.Piece()
	assert.False(t, ok)
	score := s.Score()

	assert.False(t, s.MoveLeft())
	assert.False(t, s.RotateRight())
	assert.False(t, s.Hold())
	assert.True(t, s.SoftDrop())
	assert.Equal(t, 0, s.HardDrop().Lines)
	assert.False(t, s.Spawn())
	assert.Equal(t, score, s.Score())
}

func TestNewGameResets(t *testing.T) {
	s := New(DefaultConfig(), 4)
	for range 10 {
		s.HardDrop()
	}
	s.Hold()

	s.NewGame(4)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Pieces())
	assert.Equal(t, []pentomino.Shape{pentomino.None}, s.Held())
	assert.False(t, s.GameOver())
	assert.Equal(t, int64(4), s.Seed())
}

func TestDeterministic(t *testing.T) {
	a := New(DefaultConfig(), 1234)
	b := New(DefaultConfig(), 1234)

	for i := range 60 {
		switch i % 4 {
		case 0:
			a.MoveLeft()
			b.MoveLeft()
		case 1:
			a.RotateRight()
			b.RotateRight()
		case 2:
			a.Hold()
			b.Hold()
		case 3:
			a.HardDrop()
			b.HardDrop()
		}
	}

	assert.Equal(t, a.Score(), b.Score())
	assert.Equal(t, a.Preview(), b.Preview())
	assert.Equal(t, a.Held(), b.Held())
	pa, _ := a.Piece()
	pb, _ := b.Piece()
	assert.Equal(t, pa, pb)
}

func TestGravity(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, time.Second},
		{0, time.Second},
		{2, 796500 * time.Microsecond},
		{500, minGravity},
	}

	for _, tt := range tests {
		got := Gravity(tt.level, 0.8, 0.0035)
		assert.InDelta(t, float64(tt.want), float64(got), float64(time.Microsecond), "level %d", tt.level)
	}

	s := New(DefaultConfig(), 1)
	assert.Equal(t, time.Second, s.Speed())
}

func TestGravityDecreases(t *testing.T) {
	prev := Gravity(1, 0.8, 0.0035)
	for level := 2; level <= 30; level++ {
		d := Gravity(level, 0.8, 0.0035)
		assert.Less(t, d, prev, "level %d", level)
		prev = d
	}
}
