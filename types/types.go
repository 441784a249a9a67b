// Package types contains shared data structures for termothello.
package types

import (
	"fmt"

	"termothello/board"
	"termothello/game"
)

// GameView is a read-only snapshot of a session handed to presentation code.
type GameView struct {
	SessionID  string
	Board      board.Board
	Turn       board.Cell
	Status     game.Status
	Skipped    board.Cell
	MoveNumber int
	Score      game.Score
	Legal      []board.Pos
	LastMove   *board.Pos
}

// ViewOf captures the current state of s.
func ViewOf(id string, s *game.Session) GameView {
	v := GameView{
		SessionID:  id,
		Board:      s.Board(),
		Turn:       s.Turn(),
		Status:     s.Status(),
		Skipped:    s.Skipped(),
		MoveNumber: s.MoveCount(),
		Score:      s.Score(),
		Legal:      s.LegalMoves(),
	}
	if p, ok := s.LastMove(); ok {
		v.LastMove = &p
	}
	return v
}

// Finished returns true if the game is over.
func (v *GameView) Finished() bool {
	return v.Status == game.Finished
}

// IsLegal reports whether p is a legal move for the colour to move.
func (v *GameView) IsLegal(p board.Pos) bool {
	for _, m := range v.Legal {
		if m == p {
			return true
		}
	}
	return false
}

// IsLastMove reports whether p was the most recent placement.
func (v *GameView) IsLastMove(p board.Pos) bool {
	return v.LastMove != nil && *v.LastMove == p
}

// Outcome describes the result of a finished game, e.g. "Black wins 40-24".
func (v *GameView) Outcome() string {
	if !v.Finished() {
		return ""
	}
	w := v.Score.Winner()
	if w == board.Empty {
		return "Draw " + scoreline(v.Score)
	}
	return game.ColorName(w) + " wins " + scoreline(v.Score)
}

func scoreline(s game.Score) string {
	hi, lo := s.Dark, s.Light
	if lo > hi {
		hi, lo = lo, hi
	}
	return fmt.Sprintf("%d-%d", hi, lo)
}
