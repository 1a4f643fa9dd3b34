package board

// SoftDrop moves the active piece down one row and reports whether it is
// grounded instead. A cell is blocked by the floor or by a settled cell
// directly below it; cells of the piece itself never block. Each row
// dropped scores the current level.
func (b *Board) SoftDrop() (grounded bool) {
	if !b.hasPiece {
		return true
	}
	for _, p := range b.piece.Cells {
		if p.Y+1 >= b.Height() || b.grid.Dead(p.X, p.Y+1) {
			return true
		}
	}

	b.relocate(b.piece.translated(Point{Y: 1}))
	b.piece.Shadow--
	b.score += b.level
	return false
}

// HardDrop drops the active piece by its shadow and reports that it must
// lock now. Each row dropped scores twice the current level.
func (b *Board) HardDrop() (lockNow bool) {
	if !b.hasPiece {
		return true
	}
	drop := max(b.piece.Shadow, 0)
	if drop > 0 {
		b.relocate(b.piece.translated(Point{Y: drop}))
	}
	b.score += 2 * b.level * drop
	b.piece.Shadow = 0
	return true
}

// MoveLeft shifts the active piece one column left.
func (b *Board) MoveLeft() bool {
	return b.shift(-1)
}

// MoveRight shifts the active piece one column right.
func (b *Board) MoveRight() bool {
	return b.shift(1)
}

func (b *Board) shift(dx int) bool {
	if !b.hasPiece {
		return false
	}
	target := b.piece.translated(Point{X: dx})
	for _, p := range target {
		if !b.free(p.X, p.Y) {
			return false
		}
	}
	b.relocate(target)
	b.piece.Shadow = b.shadow()
	return true
}

// shadow projects the active piece straight down and returns how many rows
// it can fall before resting on the floor or a settled cell.
func (b *Board) shadow() int {
	cells := b.piece.Cells
	h := b.Height()
	for off := 0; off <= h; off++ {
		for i, p := range cells {
			if p.Y+off >= h {
				return off - 1
			}
			below := p.Y + off + 1
			if !b.grid.InDomain(p.X, below) || !b.grid.Dead(p.X, below) {
				continue
			}
			for _, q := range cells[i+1:] {
				if q.Y+off >= h {
					return off - 1
				}
			}
			return off
		}
	}
	return h
}
