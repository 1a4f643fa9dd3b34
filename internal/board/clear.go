package board

import "github.com/JoshMDonato/Pentris/internal/pentomino"

// Clear describes the outcome of one ClearLines call.
type Clear struct {
	Lines      int
	Spin       bool
	Category   int // 10*(1+lines) with spin, 20 for five plain lines, else 10
	BackToBack int // bonus units awarded for repeating the previous category
	Combo      int
	Points     int
	LevelUp    bool
}

// Scored reports whether the lock cleared rows or earned a spin. A lock can
// score back-to-back points without either.
func (c Clear) Scored() bool {
	return c.Lines > 0 || c.Spin
}

var lineNames = [...]string{"", "SINGLE", "DOUBLE", "TRIPLE", "QUAD", "PENTRIS"}

// Label returns a short HUD label such as "SPIN DOUBLE", or "" when the
// lock scored nothing.
func (c Clear) Label() string {
	name := ""
	if c.Lines < len(lineNames) {
		name = lineNames[c.Lines]
	}
	if c.Spin {
		if name == "" {
			return "SPIN"
		}
		return "SPIN " + name
	}
	return name
}

// category codes a lock by spin flag and line count.
func category(spin bool, lines int) int {
	if spin {
		return 10 * (1 + lines)
	}
	if lines == pentomino.CellCount {
		return 20
	}
	return 10
}

// ClearLines removes full rows after a lock, updates leveling and scores
// the lock. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	spin := b.spinBonus()

	lines := 0
	for y := 0; y < b.Height(); y++ {
		if b.rowFull(y) {
			b.removeRow(y)
			lines++
		}
	}

	res := Clear{Lines: lines, Spin: spin}

	b.lines += lines
	b.linesRemaining -= lines
	if b.linesRemaining <= 0 {
		b.level++
		b.linesRemaining = LinesPerLevel*b.level + b.linesRemaining
		res.LevelUp = true
	}

	// Every lock is categorised, including ones that clear nothing.
	res.Category = category(spin, lines)
	if res.Category == b.lastCategory {
		res.BackToBack = b.lastCategory
	}
	b.lastCategory = res.Category

	if lines > 0 {
		b.combo++
	} else {
		b.combo = 0
	}
	res.Combo = b.combo

	units := res.BackToBack + b.combo
	if spin {
		units += 4 * (lines + 1)
	} else {
		units += lines * (lines + 1) / 2
	}
	res.Points = b.level * 100 * units
	b.score += res.Points

	b.lastClear = res
	return lines
}

// spinBonus checks the pivot cell of the last locked piece: three or more
// occupied diagonal neighbours award a spin. Squares outside the grid count
// as occupied. Each locked piece is checked once.
func (b *Board) spinBonus() bool {
	if !b.spinable {
		return false
	}
	b.spinable = false

	idx, ok := pentomino.Pivot(b.locked.Shape)
	if !ok {
		return false
	}
	p := b.locked.Cells[idx]

	n := 0
	for _, d := range [4]Point{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}} {
		x, y := p.X+d.X, p.Y+d.Y
		if !b.grid.InDomain(x, y) || b.grid.Occupied(x, y) {
			n++
		}
	}
	return n >= 3
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.Width(); x++ {
		if !b.grid.Occupied(x, y) {
			return false
		}
	}
	return true
}

// removeRow empties row y and shifts every row from y-1 up to 0 down by
// one, bottom to top. Buffer rows stay put.
func (b *Board) removeRow(y int) {
	for x := 0; x < b.Width(); x++ {
		b.grid.Empty(x, y)
	}
	for a := y - 1; a >= 0; a-- {
		for x := 0; x < b.Width(); x++ {
			b.grid.Move(Point{X: x, Y: a}, Point{X: x, Y: a + 1})
		}
	}
}
