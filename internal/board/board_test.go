package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

var gray = pentomino.RGB{R: 128, G: 128, B: 128}

// fillRow settles gray cells across row y except the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.grid.Set(x, y, Cell{Color: gray})
		}
	}
}

// liveCells scans the whole domain for cells of the falling piece.
func liveCells(b *Board) []Point {
	var out []Point
	for y := -b.Buffer(); y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if c, ok := b.Cell(x, y); ok && c.Alive {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

func cellsOf(b *Board) [pentomino.CellCount]Point {
	p, _ := b.Piece()
	return p.Cells
}

func pieceCells(b *Board) []Point {
	cells := cellsOf(b)
	return cells[:]
}

// verticalIAtWall spawns an I, stands it up and pushes it to column 0.
func verticalIAtWall(t *testing.T, b *Board) {
	t.Helper()
	require.True(t, b.Spawn(pentomino.I))
	require.True(t, b.RotateLeft())
	for b.MoveLeft() {
	}
	for _, p := range cellsOf(b) {
		require.Equal(t, 0, p.X)
	}
}

func TestNewBoard(t *testing.T) {
	b := New(DefaultConfig())

	assert.Equal(t, 13, b.Width())
	assert.Equal(t, 27, b.Height())
	assert.Equal(t, 2, b.Buffer())
	assert.Equal(t, 1, b.Level())
	assert.Equal(t, 5, b.LinesRemaining())
	assert.Equal(t, 0, b.Score())
	assert.Empty(t, liveCells(b))

	_, ok := b.Piece()
	assert.False(t, ok)
	assert.Equal(t, Point{X: 5, Y: 0}, b.SpawnPoint())
}

func TestCellOutsideDomainPanics(t *testing.T) {
	b := New(DefaultConfig())

	assert.Panics(t, func() { b.Cell(-1, 0) })
	assert.Panics(t, func() { b.Cell(13, 0) })
	assert.Panics(t, func() { b.Cell(0, 27) })
	assert.Panics(t, func() { b.Cell(0, -3) })
	assert.NotPanics(t, func() { b.Cell(0, -2) })
}

func TestSetLevel(t *testing.T) {
	b := New(DefaultConfig())
	b.SetLevel(4)
	assert.Equal(t, 4, b.Level())
	assert.Equal(t, 20, b.LinesRemaining())

	b.SetLevel(0)
	assert.Equal(t, 1, b.Level())
}

func TestSpawn(t *testing.T) {
	b := New(DefaultConfig())

	require.True(t, b.Spawn(pentomino.I))
	p, ok := b.Piece()
	require.True(t, ok)

	assert.Equal(t, pentomino.I, p.Shape)
	assert.Equal(t, 0, p.Orientation)
	assert.Equal(t, [5]Point{{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0}, {X: 8, Y: 0}, {X: 9, Y: 0}}, p.Cells)
	assert.Equal(t, 26, p.Shadow)
	assert.Len(t, liveCells(b), 5)

	c, ok := b.Cell(5, 0)
	require.True(t, ok)
	assert.True(t, c.Alive)
	assert.Equal(t, pentomino.Tint(pentomino.I), c.Color)
}

func TestSpawnBlockedIsAtomic(t *testing.T) {
	b := New(DefaultConfig())
	b.grid.Set(9, 0, Cell{Color: gray})

	assert.False(t, b.Spawn(pentomino.I))
	assert.Empty(t, liveCells(b))
	_, ok := b.Piece()
	assert.False(t, ok)

	assert.False(t, b.Spawn(pentomino.None))
}

func TestHardDropLongPiece(t *testing.T) {
	b := New(DefaultConfig())
	require.True(t, b.Spawn(pentomino.I))

	assert.True(t, b.HardDrop())
	assert.Equal(t, [5]Point{{X: 5, Y: 26}, {X: 6, Y: 26}, {X: 7, Y: 26}, {X: 8, Y: 26}, {X: 9, Y: 26}}, cellsOf(b))
	assert.Equal(t, 2*1*26, b.Score())

	require.True(t, b.Lock())
	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, 52, b.Score())
	assert.Equal(t, 0, b.Combo())
	assert.False(t, b.LastClear().Scored())

	c, ok := b.Cell(7, 26)
	require.True(t, ok)
	assert.False(t, c.Alive)
}

func TestSoftDrop(t *testing.T) {
	b := New(DefaultConfig())
	require.True(t, b.Spawn(pentomino.I))

	assert.False(t, b.SoftDrop())
	p, _ := b.Piece()
	assert.Equal(t, 1, p.Cells[0].Y)
	assert.Equal(t, 25, p.Shadow)
	assert.Equal(t, 1, b.Score())

	for range 25 {
		require.False(t, b.SoftDrop())
	}
	assert.True(t, b.SoftDrop())
	assert.True(t, b.SoftDrop(), "repeated soft drops stay grounded")
	assert.Equal(t, 26, b.Score())
	p, _ = b.Piece()
	assert.Equal(t, 0, p.Shadow)
}

func TestSoftDropBlockedByDeadCell(t *testing.T) {
	b := New(DefaultConfig())
	b.grid.Set(7, 3, Cell{Color: gray})
	require.True(t, b.Spawn(pentomino.I))

	p, _ := b.Piece()
	assert.Equal(t, 2, p.Shadow)

	assert.False(t, b.SoftDrop())
	assert.False(t, b.SoftDrop())
	assert.True(t, b.SoftDrop())
}

func TestShadowThenSoftDropIsGrounded(t *testing.T) {
	for _, s := range pentomino.All() {
		t.Run(s.String(), func(t *testing.T) {
			b := New(DefaultConfig())
			fillRow(b, 20, 0, 1, 2, 3)
			b.grid.Set(2, 15, Cell{Color: gray})

			require.True(t, b.Spawn(s))
			require.True(t, b.HardDrop())
			assert.True(t, b.SoftDrop())
		})
	}
}

func TestShadowFloorOverridesDeadCell(t *testing.T) {
	tests := []struct {
		name string
		dead int // row of the settled square under the L's top cell
		want int
	}{
		// The top cell meets the square at the same offset the foot
		// reaches the floor, so the floor wins.
		{"square at floor offset", 25, 24},
		{"square above floor offset", 23, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(DefaultConfig())
			b.grid.Set(6, tt.dead, Cell{Color: gray})

			require.True(t, b.Spawn(pentomino.L))
			require.True(t, b.RotateLeft())
			require.Equal(t, [5]Point{{X: 6, Y: -1}, {X: 7, Y: 2}, {X: 7, Y: 1}, {X: 7, Y: 0}, {X: 7, Y: -1}}, cellsOf(b))

			p, _ := b.Piece()
			assert.Equal(t, tt.want, p.Shadow)

			require.True(t, b.HardDrop())
			assert.True(t, b.SoftDrop(), "resting after the hard drop")
			for _, c := range cellsOf(b) {
				assert.Less(t, c.Y, b.Height())
			}
			assert.Len(t, liveCells(b), 5)
		})
	}
}

func TestMoveLeftAtColumnZero(t *testing.T) {
	b := New(DefaultConfig())
	require.True(t, b.Spawn(pentomino.I))

	for i := range 5 {
		require.True(t, b.MoveLeft(), "move %d", i)
	}
	before := cellsOf(b)
	assert.Equal(t, 0, before[0].X)

	assert.False(t, b.MoveLeft())
	assert.Equal(t, before, cellsOf(b))
	assert.Len(t, liveCells(b), 5)
}

func TestMoveBlockedByDeadCell(t *testing.T) {
	b := New(DefaultConfig())
	b.grid.Set(10, 0, Cell{Color: gray})
	require.True(t, b.Spawn(pentomino.I))

	assert.False(t, b.MoveRight())
	assert.True(t, b.MoveLeft())
	assert.True(t, b.MoveRight())
	assert.False(t, b.MoveRight())
}

func TestMoveRecomputesShadow(t *testing.T) {
	b := New(DefaultConfig())
	b.grid.Set(4, 10, Cell{Color: gray})
	require.True(t, b.Spawn(pentomino.I))

	p, _ := b.Piece()
	assert.Equal(t, 26, p.Shadow)

	require.True(t, b.MoveLeft())
	p, _ = b.Piece()
	assert.Equal(t, 9, p.Shadow)
}

func TestRotateFourTimesReturns(t *testing.T) {
	for _, s := range pentomino.All() {
		for _, cw := range []bool{false, true} {
			b := New(DefaultConfig())
			require.True(t, b.Spawn(s))
			for range 6 {
				require.False(t, b.SoftDrop())
			}
			start, _ := b.Piece()

			for turn := range 4 {
				require.True(t, b.rotate(cw), "%v turn %d", s, turn)
				live := liveCells(b)
				assert.Len(t, live, 5)
				assert.ElementsMatch(t, live, pieceCells(b))
			}

			end, _ := b.Piece()
			assert.Equal(t, start.Cells, end.Cells, "%v cw=%v", s, cw)
			assert.Equal(t, start.Deltas, end.Deltas, "%v cw=%v", s, cw)
			assert.Equal(t, 0, end.Orientation)
		}
	}
}

func TestRotateLeftThenRightRestores(t *testing.T) {
	b := New(DefaultConfig())
	require.True(t, b.Spawn(pentomino.L))
	for range 5 {
		b.SoftDrop()
	}
	start, _ := b.Piece()

	require.True(t, b.RotateLeft())
	p, _ := b.Piece()
	assert.Equal(t, 3, p.Orientation)

	require.True(t, b.RotateRight())
	end, _ := b.Piece()
	assert.Equal(t, start.Cells, end.Cells)
	assert.Equal(t, start.Deltas, end.Deltas)
	assert.Equal(t, 0, end.Orientation)
}

func TestRotateX(t *testing.T) {
	b := New(DefaultConfig())
	require.True(t, b.Spawn(pentomino.X))
	before, _ := b.Piece()

	assert.True(t, b.RotateLeft())
	assert.True(t, b.RotateRight())

	after, _ := b.Piece()
	assert.Equal(t, before, after)
}

func TestRotateKicksOffWall(t *testing.T) {
	b := New(DefaultConfig())
	verticalIAtWall(t, b)

	p, _ := b.Piece()
	assert.Equal(t, 3, p.Orientation)
	assert.Equal(t, [5]Point{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -2}}, p.Cells)

	require.True(t, b.RotateLeft())
	p, _ = b.Piece()
	assert.Equal(t, 2, p.Orientation)
	assert.Equal(t, [5]Point{{X: 4, Y: -2}, {X: 3, Y: -2}, {X: 2, Y: -2}, {X: 1, Y: -2}, {X: 0, Y: -2}}, p.Cells)
	assert.Len(t, liveCells(b), 5)
}

func TestRotateBlocked(t *testing.T) {
	b := New(DefaultConfig())
	require.True(t, b.Spawn(pentomino.I))
	for y := -2; y < b.Height(); y++ {
		if y != 0 {
			fillRow(b, y)
		}
	}
	fillRow(b, 0, 5, 6, 7, 8, 9)
	before, _ := b.Piece()

	assert.False(t, b.RotateLeft())
	assert.False(t, b.RotateRight())
	after, _ := b.Piece()
	assert.Equal(t, before, after)
}

func TestRandomOperationsKeepFiveLiveCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, s := range pentomino.All() {
		b := New(DefaultConfig())
		fillRow(b, 22, 6)
		b.grid.Set(1, 12, Cell{Color: gray})
		require.True(t, b.Spawn(s))

		for range 200 {
			switch rng.Intn(5) {
			case 0:
				b.MoveLeft()
			case 1:
				b.MoveRight()
			case 2:
				b.RotateLeft()
			case 3:
				b.RotateRight()
			case 4:
				b.SoftDrop()
			}

			live := liveCells(b)
			require.Len(t, live, 5, "%v", s)
			require.ElementsMatch(t, live, pieceCells(b), "%v", s)
			p, _ := b.Piece()
			require.GreaterOrEqual(t, p.Shadow, 0)
		}
	}
}

func TestRemove(t *testing.T) {
	b := New(DefaultConfig())
	require.True(t, b.Spawn(pentomino.P))

	shape, ok := b.Remove()
	assert.True(t, ok)
	assert.Equal(t, pentomino.P, shape)
	assert.Empty(t, liveCells(b))

	_, ok = b.Remove()
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	b := New(DefaultConfig())
	require.True(t, b.Spawn(pentomino.I))
	b.HardDrop()
	b.Lock()

	b.Reset(3)
	assert.Equal(t, 0, b.Score())
	assert.Equal(t, 3, b.Level())
	assert.Equal(t, 15, b.LinesRemaining())
	assert.False(t, b.grid.Occupied(7, 26))
}
