package pentris

import (
	"github.com/JoshMDonato/Pentris/internal/board"
	"github.com/JoshMDonato/Pentris/internal/core"
)

// play runs one tick of live play.
func (g *Game) play(in core.InputFrame) {
	t := g.timing
	wasSoft := g.soft.held
	g.left.update(in.Has(core.ActionLeft), t.release)
	g.right.update(in.Has(core.ActionRight), t.release)
	g.soft.update(in.Has(core.ActionSoftDrop), t.release)

	if in.Has(core.ActionHold) && g.sess.Hold() {
		g.resetDrop()
	}

	if in.Has(core.ActionRotateLeft) {
		g.sess.RotateLeft()
	} else if in.Has(core.ActionRotateRight) {
		g.sess.RotateRight()
	}

	if in.Has(core.ActionHardDrop) {
		g.settle(g.sess.HardDrop())
		g.resetDrop()
		return
	}

	g.autoShift()

	switch {
	case g.soft.fresh:
		g.gravityWait = t.fast
	case wasSoft && !g.soft.held:
		g.gravityWait = g.gravityInterval()
	}

	if g.locking {
		g.lockWait--
		if g.lockWait <= 0 {
			g.lockExpired()
		}
		return
	}

	g.gravityWait--
	if g.gravityWait <= 0 {
		g.gravityWait = g.gravityInterval()
		if g.sess.SoftDrop() {
			g.startLock()
		}
	}
}

// autoShift moves on a fresh press, then repeats while the key is held:
// first after the shift delay, then at the shift rate. Left wins ties.
func (g *Game) autoShift() {
	switch {
	case g.left.fresh:
		g.sess.MoveLeft()
		g.shiftWait = g.timing.shiftDelay
	case g.right.fresh:
		g.sess.MoveRight()
		g.shiftWait = g.timing.shiftDelay
	case g.left.held || g.right.held:
		g.shiftWait--
		if g.shiftWait > 0 {
			return
		}
		if g.left.held {
			g.sess.MoveLeft()
		} else {
			g.sess.MoveRight()
		}
		g.shiftWait = g.timing.shiftRate
	}
}

func (g *Game) gravityInterval() int {
	if g.soft.held {
		return g.timing.fast
	}
	return g.timing.gravity(g.sess.Level())
}

func (g *Game) startLock() {
	g.locking = true
	g.lockWait = g.timing.lockDelay
}

// lockExpired gives a grounded piece one more chance to fall. If it still
// cannot, it locks and the next piece starts falling at once.
func (g *Game) lockExpired() {
	g.locking = false
	if g.sess.SoftDrop() {
		g.settle(g.sess.Lock())
	}
	g.gravityWait = g.gravityInterval()
	if !g.sess.GameOver() && g.sess.SoftDrop() {
		g.startLock()
	}
}

// resetDrop restarts gravity for a new piece.
func (g *Game) resetDrop() {
	g.locking = false
	g.lockWait = 0
	g.shiftWait = g.timing.shiftDelay
	g.gravityWait = g.gravityInterval()
}

// settle records the outcome of a lock for the HUD.
func (g *Game) settle(c board.Clear) {
	if !c.Scored() {
		return
	}
	g.label = c.Label()
	if c.BackToBack > 0 {
		g.label = "B2B " + g.label
	}
	g.labelTicks = g.timing.label
}
