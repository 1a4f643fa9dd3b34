package board

import "github.com/JoshMDonato/Pentris/internal/pentomino"

// Default playfield dimensions.
const (
	DefaultWidth  = 13
	DefaultHeight = 2*DefaultWidth + 1
	DefaultBuffer = 2
)

// LinesPerLevel scales the number of lines needed to leave a level.
const LinesPerLevel = 5

// Config sets the board dimensions.
type Config struct {
	Width  int
	Height int
	Buffer int
}

// DefaultConfig returns the standard 13x27 board with a two-row buffer.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Buffer: DefaultBuffer,
	}
}

// Board holds the grid, the active piece and the scoring state.
type Board struct {
	grid *Grid

	piece    Piece
	hasPiece bool
	locked   Piece // last piece that locked, checked for the spin bonus
	spinable bool

	score          int
	level          int
	lines          int
	linesRemaining int
	combo          int
	lastCategory   int
	lastClear      Clear
}

// New creates an empty board at level 1.
func New(cfg Config) *Board {
	b := &Board{
		grid: NewGrid(cfg.Width, cfg.Height, cfg.Buffer),
	}
	b.SetLevel(1)
	return b
}

// SetLevel restarts leveling at the given level. Levels below 1 become 1.
func (b *Board) SetLevel(level int) {
	b.level = max(level, 1)
	b.linesRemaining = LinesPerLevel * b.level
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.Width() }

// Height returns the number of visible rows.
func (b *Board) Height() int { return b.grid.Height() }

// Buffer returns the number of hidden rows above the field.
func (b *Board) Buffer() int { return b.grid.Buffer() }

// InDomain reports whether (x, y) is a grid coordinate.
func (b *Board) InDomain(x, y int) bool { return b.grid.InDomain(x, y) }

// Cell returns the cell at (x, y) and whether the square is occupied.
// It panics outside the grid domain.
func (b *Board) Cell(x, y int) (Cell, bool) { return b.grid.Get(x, y) }

// Piece returns the active piece, if any.
func (b *Board) Piece() (Piece, bool) { return b.piece, b.hasPiece }

// Score returns the total score.
func (b *Board) Score() int { return b.score }

// Level returns the current level.
func (b *Board) Level() int { return b.level }

// Lines returns the total lines cleared.
func (b *Board) Lines() int { return b.lines }

// LinesRemaining returns the lines left before the next level.
func (b *Board) LinesRemaining() int { return b.linesRemaining }

// Combo returns the number of consecutive clearing locks.
func (b *Board) Combo() int { return b.combo }

// LastScoreType returns the category code of the most recent scoring lock.
func (b *Board) LastScoreType() int { return b.lastCategory }

// LastClear returns the outcome of the most recent ClearLines call.
func (b *Board) LastClear() Clear { return b.lastClear }

// SpawnPoint returns the anchor new pieces are placed at.
func (b *Board) SpawnPoint() Point {
	return Point{X: (b.Width()-1)/2 - 1, Y: 0}
}

// Spawn places a new live piece at the spawn point. If any target square
// is occupied nothing is written and Spawn returns false.
func (b *Board) Spawn(shape pentomino.Shape) bool {
	if !shape.Valid() {
		return false
	}

	anchor := b.SpawnPoint()
	var cells [pentomino.CellCount]Point
	for i, off := range pentomino.Offsets(shape) {
		p := anchor.Add(off)
		if !b.grid.InDomain(p.X, p.Y) || b.grid.Occupied(p.X, p.Y) {
			return false
		}
		cells[i] = p
	}

	b.piece = Piece{
		Shape:  shape,
		Cells:  cells,
		Deltas: pentomino.Deltas(shape),
	}
	b.hasPiece = true
	b.write(cells)
	b.piece.Shadow = b.shadow()
	return true
}

// Lock settles the active piece in place. It returns false when there is
// no active piece.
func (b *Board) Lock() bool {
	if !b.hasPiece {
		return false
	}
	for _, p := range b.piece.Cells {
		c, _ := b.grid.Get(p.X, p.Y)
		c.Alive = false
		b.grid.Set(p.X, p.Y, c)
	}
	b.locked = b.piece
	b.spinable = true
	b.hasPiece = false
	return true
}

// Remove lifts the active piece off the board and returns its shape.
func (b *Board) Remove() (pentomino.Shape, bool) {
	if !b.hasPiece {
		return pentomino.None, false
	}
	for _, p := range b.piece.Cells {
		b.grid.Empty(p.X, p.Y)
	}
	b.hasPiece = false
	return b.piece.Shape, true
}

// Reset empties the board and restores the initial scoring state.
func (b *Board) Reset(level int) {
	b.grid.Reset()
	b.piece = Piece{}
	b.hasPiece = false
	b.locked = Piece{}
	b.spinable = false
	b.score = 0
	b.lines = 0
	b.combo = 0
	b.lastCategory = 0
	b.lastClear = Clear{}
	b.SetLevel(level)
}

// write stores live cells of the active piece at cells.
func (b *Board) write(cells [pentomino.CellCount]Point) {
	live := Cell{Color: pentomino.Tint(b.piece.Shape), Alive: true}
	for _, p := range cells {
		b.grid.Set(p.X, p.Y, live)
	}
}

// relocate moves the active piece to cells: all sources are cleared
// before any target is written.
func (b *Board) relocate(cells [pentomino.CellCount]Point) {
	for _, p := range b.piece.Cells {
		b.grid.Empty(p.X, p.Y)
	}
	b.piece.Cells = cells
	b.write(cells)
}

// free reports whether a piece cell may move to (x, y): the square is in
// the domain and is either empty or part of the active piece.
func (b *Board) free(x, y int) bool {
	if !b.grid.InDomain(x, y) {
		return false
	}
	c, ok := b.grid.Get(x, y)
	return !ok || c.Alive
}
