package board

import "github.com/JoshMDonato/Pentris/internal/pentomino"

// Piece is the falling pentomino. It refers to its cells by coordinate;
// the cells themselves live in the grid.
type Piece struct {
	Shape       pentomino.Shape
	Orientation int
	Cells       [pentomino.CellCount]Point
	Deltas      [pentomino.CellCount]Point // next counter-clockwise step per cell
	Shadow      int                        // rows the piece can still fall
}

// Ghost returns the cells the piece would occupy after a hard drop.
func (p Piece) Ghost() [pentomino.CellCount]Point {
	var out [pentomino.CellCount]Point
	drop := max(p.Shadow, 0)
	for i, c := range p.Cells {
		out[i] = Point{X: c.X, Y: c.Y + drop}
	}
	return out
}

// Contains reports whether the piece covers (x, y).
func (p Piece) Contains(x, y int) bool {
	for _, c := range p.Cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

func (p Piece) translated(d Point) [pentomino.CellCount]Point {
	var out [pentomino.CellCount]Point
	for i, c := range p.Cells {
		out[i] = c.Add(d)
	}
	return out
}
