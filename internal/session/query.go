package session

import (
	"github.com/JoshMDonato/Pentris/internal/board"
	"github.com/JoshMDonato/Pentris/internal/pentomino"
)

// Board returns the board for read-only inspection.
func (s *Session) Board() *board.Board { return s.board }

// Config returns the rules the session was created with.
func (s *Session) Config() Config { return s.cfg }

// Seed returns the seed of the current game.
func (s *Session) Seed() int64 { return s.seed }

// Cell returns the board cell at (x, y).
func (s *Session) Cell(x, y int) (board.Cell, bool) { return s.board.Cell(x, y) }

// Piece returns the falling piece, if any.
func (s *Session) Piece() (board.Piece, bool) { return s.board.Piece() }

// Score returns the total score.
func (s *Session) Score() int { return s.board.Score() }

// Level returns the current level.
func (s *Session) Level() int { return s.board.Level() }

// Lines returns the total lines cleared.
func (s *Session) Lines() int { return s.board.Lines() }

// LinesRemaining returns the lines left before the next level.
func (s *Session) LinesRemaining() int { return s.board.LinesRemaining() }

// Combo returns the current combo count.
func (s *Session) Combo() int { return s.board.Combo() }

// LastScoreType returns the category code of the last scoring lock.
func (s *Session) LastScoreType() int { return s.board.LastScoreType() }

// LastClear returns the outcome of the most recent lock.
func (s *Session) LastClear() board.Clear { return s.board.LastClear() }

// Held returns the hold slots, oldest first.
func (s *Session) Held() []pentomino.Shape { return s.hold.Held() }

// HoldsLeft returns how many holds remain this turn.
func (s *Session) HoldsLeft() int { return s.holdsLeft }

// Preview returns the upcoming shapes, nearest first.
func (s *Session) Preview() []pentomino.Shape { return s.queue.Preview() }

// Pieces returns how many pieces have been spawned this game.
func (s *Session) Pieces() int { return s.pieces }

// GameOver reports whether a spawn has failed.
func (s *Session) GameOver() bool { return s.gameOver }
