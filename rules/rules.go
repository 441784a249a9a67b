// Package rules computes legal Othello moves and the discs they flip.
// Every function is pure and safe for concurrent use.
package rules

import (
	"errors"
	"fmt"

	"termothello/board"
)

// ErrIllegalMove is returned when a move is not in the legal-move set.
var ErrIllegalMove = errors.New("illegal move")

// Direction is a compass offset used to scan a ray from a square.
type Direction struct {
	DRank int
	DFile int
}

// Directions lists the eight orthogonal and diagonal rays.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Step returns the square one step from p along d.
func (d Direction) Step(p board.Pos) board.Pos {
	return board.Pos{Rank: p.Rank + d.DRank, File: p.File + d.DFile}
}

// Move is a placement by one colour.
type Move struct {
	Pos   board.Pos
	Color board.Cell
}

// MoveResult describes the effect of a legal move.
type MoveResult struct {
	Pos   board.Pos
	Color board.Cell
	Flips []board.Pos
}

// ApplyTo returns a copy of b with the placement and all flips written.
// b is returned unchanged if any square is off the board or the colour is not a disc.
func (r MoveResult) ApplyTo(b board.Board) (board.Board, error) {
	out, err := b.WithCellSet(r.Pos.Rank, r.Pos.File, r.Color)
	if err != nil {
		return b, err
	}
	for _, p := range r.Flips {
		if out, err = out.WithCellSet(p.Rank, p.File, r.Color); err != nil {
			return b, err
		}
	}
	return out, nil
}

// capture returns the run of opposing discs bounded by color along d, or nil.
func capture(b board.Board, color board.Cell, from board.Pos, d Direction) []board.Pos {
	opp := color.Opponent()
	var run []board.Pos
	for p := d.Step(from); p.InBounds(); p = d.Step(p) {
		switch b.At(p) {
		case opp:
			run = append(run, p)
		case color:
			return run
		default:
			return nil
		}
	}
	return nil
}

func playable(b board.Board, color board.Cell, p board.Pos) bool {
	return (color == board.Dark || color == board.Light) && p.InBounds() && b.At(p) == board.Empty
}

// Flips returns every disc flipped by color playing at p, across all
// qualifying directions. It is empty when the move is not legal.
func Flips(b board.Board, color board.Cell, p board.Pos) []board.Pos {
	if !playable(b, color, p) {
		return nil
	}
	var flips []board.Pos
	for _, d := range Directions {
		flips = append(flips, capture(b, color, p, d)...)
	}
	return flips
}

// IsLegal reports whether color may play at p.
func IsLegal(b board.Board, color board.Cell, p board.Pos) bool {
	if !playable(b, color, p) {
		return false
	}
	for _, d := range Directions {
		if len(capture(b, color, p, d)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns the legal squares for color in rank-major order.
// An empty result means color must pass.
func LegalMoves(b board.Board, color board.Cell) []board.Pos {
	var moves []board.Pos
	for r := 0; r < board.Size; r++ {
		for f := 0; f < board.Size; f++ {
			p := board.Pos{Rank: r, File: f}
			if IsLegal(b, color, p) {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// HasLegalMove reports whether color has at least one legal move.
func HasLegalMove(b board.Board, color board.Cell) bool {
	for r := 0; r < board.Size; r++ {
		for f := 0; f < board.Size; f++ {
			if IsLegal(b, color, board.Pos{Rank: r, File: f}) {
				return true
			}
		}
	}
	return false
}

// Apply validates m against b and returns its result. b is not modified.
func Apply(b board.Board, m Move) (MoveResult, error) {
	if !m.Pos.InBounds() {
		return MoveResult{}, fmt.Errorf("%w: %v", board.ErrOutOfRange, m.Pos)
	}
	flips := Flips(b, m.Color, m.Pos)
	if len(flips) == 0 {
		return MoveResult{}, fmt.Errorf("%w: %v at %v", ErrIllegalMove, m.Color, m.Pos)
	}
	return MoveResult{Pos: m.Pos, Color: m.Color, Flips: flips}, nil
}

// Play applies m to b and returns the new board with the move result.
func Play(b board.Board, m Move) (board.Board, MoveResult, error) {
	res, err := Apply(b, m)
	if err != nil {
		return b, res, err
	}
	after, err := res.ApplyTo(b)
	if err != nil {
		return b, MoveResult{}, err
	}
	return after, res, nil
}
