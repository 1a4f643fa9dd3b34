package board

import "github.com/JoshMDonato/Pentris/internal/pentomino"

// WipeStep covers the lowest uncovered row with wiped cells and reports
// whether a row was covered. Settled cells keep their colour and gain the
// wipe flag; empty squares are filled with WipeTint. Once the top row is
// covered, WipeStep returns false.
func (b *Board) WipeStep() bool {
	if b.wiped(0, 0) {
		return false
	}
	for y := b.Height() - 1; y >= 0; y-- {
		if b.wiped(0, y) {
			continue
		}
		for x := 0; x < b.Width(); x++ {
			c, ok := b.grid.Get(x, y)
			if !ok {
				c = Cell{Color: pentomino.WipeTint}
			}
			c.Alive = false
			c.Wiped = true
			b.grid.Set(x, y, c)
		}
		return true
	}
	return false
}

// Wiped reports whether the wipe has covered the whole field.
func (b *Board) Wiped() bool {
	return b.wiped(0, 0)
}

func (b *Board) wiped(x, y int) bool {
	c, ok := b.grid.Get(x, y)
	return ok && c.Wiped
}
