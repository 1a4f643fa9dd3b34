package pentris

import "github.com/JoshMDonato/Pentris/internal/pentomino"

// Snapshot captures the game state for determinism tests and replays.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	Mode      int
	Phase     Phase
	Paused    bool
	Score     int
	Level     int
	Lines     int
	Remaining int
	Combo     int
	Pieces    int

	Shape       string // active piece, "-" when none
	Orientation int
	PieceCells  []int // x, y pairs

	Held    []string
	Preview []string

	// Cells holds one entry per visible square, row-major: 0 empty,
	// 1 live, 2 settled, 3 wiped.
	Cells []int
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Mode:   int(g.mode),
		Phase:  g.phase,
		Paused: g.paused,
		Shape:  pentomino.None.String(),
	}
	if g.sess == nil {
		return snap
	}

	snap.Score = g.sess.Score()
	snap.Level = g.sess.Level()
	snap.Lines = g.sess.Lines()
	snap.Remaining = g.sess.LinesRemaining()
	snap.Combo = g.sess.Combo()
	snap.Pieces = g.sess.Pieces()

	if p, ok := g.sess.Piece(); ok {
		snap.Shape = p.Shape.String()
		snap.Orientation = p.Orientation
		for _, c := range p.Cells {
			snap.PieceCells = append(snap.PieceCells, c.X, c.Y)
		}
	}
	for _, s := range g.sess.Held() {
		snap.Held = append(snap.Held, s.String())
	}
	for _, s := range g.sess.Preview() {
		snap.Preview = append(snap.Preview, s.String())
	}

	b := g.sess.Board()
	snap.Cells = make([]int, 0, b.Width()*b.Height())
	for y := range b.Height() {
		for x := range b.Width() {
			c, ok := b.Cell(x, y)
			v := 0
			switch {
			case !ok:
			case c.Wiped:
				v = 3
			case c.Alive:
				v = 1
			default:
				v = 2
			}
			snap.Cells = append(snap.Cells, v)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{snap.Mode, snap.Score, snap.Level, snap.Lines, snap.Remaining, snap.Combo, snap.Pieces, snap.Orientation} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, s := range append([]string{string(snap.Phase), snap.Shape}, append(snap.Held, snap.Preview...)...) {
		for i := range len(s) {
			h = h*31 + uint64(s[i])
		}
	}
	for _, v := range snap.PieceCells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Cells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
