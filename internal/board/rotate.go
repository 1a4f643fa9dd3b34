package board

import "github.com/JoshMDonato/Pentris/internal/pentomino"

// RotateLeft turns the active piece a quarter turn counter-clockwise.
func (b *Board) RotateLeft() bool {
	return b.rotate(false)
}

// RotateRight turns the active piece a quarter turn clockwise.
func (b *Board) RotateRight() bool {
	return b.rotate(true)
}

// rotate tries the plain turn first and then each kick for the transition
// in order. The first placement whose squares are all in the domain and
// empty (or held by the piece itself) wins. X accepts every turn unchanged.
func (b *Board) rotate(cw bool) bool {
	if !b.hasPiece {
		return false
	}
	shape := b.piece.Shape
	if !pentomino.Rotates(shape) {
		return true
	}

	from := b.piece.Orientation
	to := (from + 3) % 4
	if cw {
		to = (from + 1) % 4
	}

	var step, next [pentomino.CellCount]Point
	for i, d := range b.piece.Deltas {
		if cw {
			step[i] = Point{X: d.Y, Y: -d.X}
			next[i] = step[i].Neg()
		} else {
			step[i] = d
			next[i] = Point{X: d.Y, Y: -d.X}
		}
	}

	kicks, _ := pentomino.Kicks(shape, from, to)
	candidates := make([]Point, 0, 1+len(kicks))
	candidates = append(candidates, Point{})
	candidates = append(candidates, kicks[:]...)

	for _, kick := range candidates {
		var target [pentomino.CellCount]Point
		ok := true
		for i, p := range b.piece.Cells {
			target[i] = p.Add(step[i]).Add(kick)
			if !b.free(target[i].X, target[i].Y) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		b.relocate(target)
		b.piece.Deltas = next
		b.piece.Orientation = to
		b.piece.Shadow = b.shadow()
		return true
	}
	return false
}
