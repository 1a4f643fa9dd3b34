// Package board implements the playfield: an option-typed cell grid, the
// active piece, and the movement, rotation, line-clear and scoring rules.
// The board is single-threaded and never logs; every multi-cell change is
// applied atomically.
package board

import (
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

// Point is a grid coordinate.
type Point = pentomino.Point

// Cell is the content of an occupied grid square.
type Cell struct {
	Color pentomino.RGB
	Alive bool // part of the falling piece
	Wiped bool // covered by the game-over wipe
}

// Grid maps every in-domain coordinate to an optional Cell. The domain is
// x in [0,width) and y in [-buffer,height); it is fixed at construction.
// A coordinate with no stored cell is empty. Touching a coordinate outside
// the domain panics.
type Grid struct {
	width  int
	height int
	buffer int
	cells  *intmap.Map[int, Cell]
}

// NewGrid creates an empty grid.
func NewGrid(width, height, buffer int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		buffer: buffer,
		cells:  intmap.New[int, Cell](width * (height + buffer)),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of visible rows.
func (g *Grid) Height() int { return g.height }

// Buffer returns the number of hidden rows above y=0.
func (g *Grid) Buffer() int { return g.buffer }

// InDomain reports whether (x, y) is a grid coordinate.
func (g *Grid) InDomain(x, y int) bool {
	return x >= 0 && x < g.width && y >= -g.buffer && y < g.height
}

func (g *Grid) key(x, y int) int {
	if !g.InDomain(x, y) {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d grid (buffer %d)", x, y, g.width, g.height, g.buffer))
	}
	return (y+g.buffer)*g.width + x
}

// Get returns the cell at (x, y) and whether the square is occupied.
func (g *Grid) Get(x, y int) (Cell, bool) {
	return g.cells.Get(g.key(x, y))
}

// Set occupies (x, y) with c.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells.Put(g.key(x, y), c)
}

// Empty clears (x, y).
func (g *Grid) Empty(x, y int) {
	g.cells.Del(g.key(x, y))
}

// Occupied reports whether (x, y) holds any cell.
func (g *Grid) Occupied(x, y int) bool {
	_, ok := g.Get(x, y)
	return ok
}

// Dead reports whether (x, y) holds a settled cell.
func (g *Grid) Dead(x, y int) bool {
	c, ok := g.Get(x, y)
	return ok && !c.Alive
}

// Move transfers the content of src to dst, leaving src empty.
func (g *Grid) Move(src, dst Point) {
	c, ok := g.Get(src.X, src.Y)
	g.Empty(src.X, src.Y)
	if ok {
		g.Set(dst.X, dst.Y, c)
	} else {
		g.Empty(dst.X, dst.Y)
	}
}

// Reset empties every square.
func (g *Grid) Reset() {
	g.cells.Clear()
}
