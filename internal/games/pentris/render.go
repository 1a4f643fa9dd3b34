package pentris

import (
	"fmt"

	"github.com/JoshMDonato/Pentris/internal/core"
	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

const (
	cellWidth  = 2  // characters per board square
	panelWidth = 14 // side panel including its border
	miniRows   = 3  // rows of a spawn-orientation piece
)

var (
	frameColor = core.ColorGray
	dimColor   = core.ColorDarkGray
	textColor  = core.ColorBrightWhite
	labelColor = core.ColorYellow
)

func tint(s pentomino.Shape) core.Color {
	c := pentomino.Tint(s)
	return core.RGB(c.R, c.G, c.B)
}

// layout returns the board frame size for the current rules.
func (g *Game) layout() (boardW, boardH int) {
	return g.cfg.Board.Width*cellWidth + 2, g.cfg.Board.Height + 2
}

func (g *Game) checkScreenSize() {
	boardW, boardH := g.layout()
	g.tooSmall = g.runtime.ScreenW < boardW+1+panelWidth || g.runtime.ScreenH < boardH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.sess == nil {
		return
	}

	boardW, boardH := g.layout()
	left := (dst.Width() - boardW - 1 - panelWidth) / 2
	top := (dst.Height() - boardH) / 2
	frame := core.NewRect(left, top, boardW, boardH)

	g.renderBoard(dst, frame)
	g.renderPanel(dst, frame.Right()+1, top)
	g.renderOverlay(dst, frame)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	boardW, boardH := g.layout()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d", boardW+1+panelWidth, boardH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame, frameColor)
	b := g.sess.Board()

	var ghost [pentomino.CellCount]pentomino.Point
	piece, hasPiece := g.sess.Piece()
	if hasPiece {
		ghost = piece.Ghost()
	}
	isGhost := func(x, y int) bool {
		if !hasPiece || piece.Shadow <= 0 {
			return false
		}
		for _, p := range ghost {
			if p.X == x && p.Y == y {
				return true
			}
		}
		return false
	}

	inner := frame.Inner()
	for y := range b.Height() {
		sy := inner.Y + y
		for x := range b.Width() {
			sx := inner.X + x*cellWidth
			c, ok := b.Cell(x, y)
			switch {
			case ok:
				col := core.RGB(c.Color.R, c.Color.G, c.Color.B)
				r := '█'
				if c.Wiped {
					r = '▓'
				}
				dst.SetColor(sx, sy, r, col)
				dst.SetColor(sx+1, sy, r, col)
			case isGhost(x, y):
				col := tint(piece.Shape)
				dst.SetColor(sx, sy, '░', col)
				dst.SetColor(sx+1, sy, '░', col)
			default:
				dst.SetColor(sx+1, sy, '·', dimColor)
			}
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	held := g.sess.Held()
	g.renderShapes(dst, core.NewRect(x, y, panelWidth, miniRows+3),
		fmt.Sprintf("HOLD %d", g.sess.HoldsLeft()), held)
	y += miniRows + 3

	g.renderShapes(dst, core.NewRect(x, y, panelWidth, miniRows+3), "NEXT", g.sess.Preview())
	y += miniRows + 3

	stats := core.NewRect(x, y, panelWidth, 13)
	dst.DrawBox(stats, frameColor)
	row := y + 1
	line := func(name string, value int) {
		dst.DrawTextColor(x+2, row, name, dimColor)
		dst.DrawTextColor(x+2, row+1, fmt.Sprintf("%*d", panelWidth-4, value), textColor)
		row += 2
	}
	line("SCORE", g.sess.Score())
	line("LEVEL", g.sess.Level())
	line("LINES", g.sess.Lines())
	line("TO NEXT", g.sess.LinesRemaining())
	if combo := g.sess.Combo(); combo > 1 {
		dst.DrawTextColor(x+2, row, fmt.Sprintf("COMBO x%d", combo), labelColor)
	}
	row++
	if g.label != "" {
		dst.DrawTextColor(x+1, row, fmt.Sprintf("%-*s", panelWidth-2, g.label), labelColor)
	}
}

// renderShapes draws a titled box with the first shape drawn in full and
// the rest listed by name.
func (g *Game) renderShapes(dst *core.Screen, r core.Rect, title string, shapes []pentomino.Shape) {
	dst.DrawBox(r, frameColor)
	dst.DrawTextColor(r.X+2, r.Y, title, textColor)
	if len(shapes) == 0 {
		return
	}

	if first := shapes[0]; first.Valid() {
		col := tint(first)
		inner := r.Inner()
		for _, off := range pentomino.Offsets(first) {
			px := r.X + 2 + off.X*cellWidth
			py := r.Y + 1 + off.Y
			if !inner.Contains(px+1, py) {
				continue
			}
			dst.SetColor(px, py, '█', col)
			dst.SetColor(px+1, py, '█', col)
		}
	}

	px := r.X + 2
	for _, s := range shapes[1:] {
		if !s.Valid() {
			dst.DrawTextColor(px, r.Bottom()-2, "-", dimColor)
		} else {
			dst.DrawTextColor(px, r.Bottom()-2, s.String(), tint(s))
		}
		px += 2
		if px >= r.Right()-1 {
			break
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect) {
	var lines []string
	switch {
	case g.paused:
		lines = []string{"PAUSED", "P to resume"}
	case g.phase == PhaseCountdown:
		secs := (g.countdown + g.timing.rate - 1) / g.timing.rate
		lines = []string{"READY", fmt.Sprintf("%d", max(secs, 1))}
	case g.phase == PhaseOver:
		lines = []string{"GAME OVER", fmt.Sprintf("SCORE %d", g.sess.Score()), "R to restart"}
	default:
		return
	}

	mid := frame.Y + frame.H/2 - len(lines)/2
	for i, text := range lines {
		w := len([]rune(text)) + 2
		x := core.Clamp(frame.X+(frame.W-w)/2, frame.X+1, frame.Right()-1)
		dst.DrawRect(core.NewRect(x, mid+i, w, 1), ' ', core.ColorDefault)
		dst.DrawTextColor(x+1, mid+i, text, textColor)
	}
}
