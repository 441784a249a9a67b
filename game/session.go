// Package game holds the Othello session state machine.
package game

import (
	"errors"
	"fmt"
	"strings"

	"termothello/board"
	"termothello/rules"
)

// ErrInvalidSessionState is returned when a move is requested after the game has finished.
var ErrInvalidSessionState = errors.New("invalid session state")

// Status is the derived state of a session.
type Status int

const (
	// InProgress means the colour to move has at least one legal move.
	InProgress Status = iota
	// PassForced means the opponent had no legal move and was skipped;
	// the colour to move plays again.
	PassForced
	// Finished means neither colour has a legal move.
	Finished
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case PassForced:
		return "pass forced"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Score counts the discs of each colour.
type Score struct {
	Dark  int
	Light int
}

// Total returns the number of discs on the board.
func (s Score) Total() int {
	return s.Dark + s.Light
}

// Winner returns the colour with more discs, or Empty for a draw.
func (s Score) Winner() board.Cell {
	switch {
	case s.Dark > s.Light:
		return board.Dark
	case s.Light > s.Dark:
		return board.Light
	}
	return board.Empty
}

// Session owns one board and the turn state around it.
// It is not safe for concurrent use; callers serialise access.
type Session struct {
	board    board.Board
	turn     board.Cell
	moves    int
	status   Status
	skipped  board.Cell
	lastMove *board.Pos
}

// NewSession starts a game from the opening layout with Dark to move.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// NewSessionFrom starts a game from an arbitrary position.
// If turn has no legal move the opponent moves instead and the status is PassForced.
func NewSessionFrom(b board.Board, turn board.Cell) (*Session, error) {
	if !b.IsValid() {
		return nil, board.ErrInvalidState
	}
	if turn != board.Dark && turn != board.Light {
		return nil, fmt.Errorf("%w: %v cannot move", ErrInvalidSessionState, turn)
	}
	s := &Session{board: b}
	s.advance(turn.Opponent(), turn)
	return s, nil
}

// Reset restores the opening position.
func (s *Session) Reset() {
	*s = Session{
		board:  board.Starting(),
		turn:   board.Dark,
		status: InProgress,
	}
}

// advance hands the turn to next, falling back to prev when next must pass.
func (s *Session) advance(prev, next board.Cell) {
	s.skipped = board.Empty
	switch {
	case s.board.Full():
		s.turn = next
		s.status = Finished
	case rules.HasLegalMove(s.board, next):
		s.turn = next
		s.status = InProgress
	case rules.HasLegalMove(s.board, prev):
		s.turn = prev
		s.skipped = next
		s.status = PassForced
	default:
		s.turn = next
		s.status = Finished
	}
}

// ApplyMove plays the colour to move at p.
// The session is unchanged when an error is returned.
func (s *Session) ApplyMove(p board.Pos) (rules.MoveResult, error) {
	if s.status == Finished {
		return rules.MoveResult{}, fmt.Errorf("%w: game is %v", ErrInvalidSessionState, s.status)
	}
	next, res, err := rules.Play(s.board, rules.Move{Pos: p, Color: s.turn})
	if err != nil {
		return rules.MoveResult{}, err
	}
	s.board = next
	s.moves++
	s.lastMove = &res.Pos
	s.advance(res.Color, res.Color.Opponent())
	return res, nil
}

// Board returns a copy of the current board.
func (s *Session) Board() board.Board {
	return s.board
}

// Turn returns the colour to move.
func (s *Session) Turn() board.Cell {
	return s.turn
}

// Status returns the derived session status.
func (s *Session) Status() Status {
	return s.status
}

// Skipped returns the colour that was passed over, or Empty when no pass is pending.
func (s *Session) Skipped() board.Cell {
	return s.skipped
}

// MoveCount returns the number of placements made.
func (s *Session) MoveCount() int {
	return s.moves
}

// LastMove returns the most recent placement.
func (s *Session) LastMove() (board.Pos, bool) {
	if s.lastMove == nil {
		return board.Pos{}, false
	}
	return *s.lastMove, true
}

// LegalMoves returns the legal squares for the colour to move.
func (s *Session) LegalMoves() []board.Pos {
	if s.status == Finished {
		return nil
	}
	return rules.LegalMoves(s.board, s.turn)
}

// Score counts the discs currently on the board.
func (s *Session) Score() Score {
	return Score{
		Dark:  s.board.Count(board.Dark),
		Light: s.board.Count(board.Light),
	}
}

// Winner returns the leading colour once finished, Empty for a draw or an unfinished game.
func (s *Session) Winner() board.Cell {
	if s.status != Finished {
		return board.Empty
	}
	return s.Score().Winner()
}

// ColorName returns the conventional player name of a colour.
func ColorName(c board.Cell) string {
	switch c {
	case board.Dark:
		return "Black"
	case board.Light:
		return "White"
	}
	return "Nobody"
}

// StatusLine describes the move number and who is to move, ending in a newline.
func StatusLine(moves int, status Status, turn board.Cell) string {
	var sb strings.Builder
	if moves == 0 {
		sb.WriteString("It's the first move. ")
	} else {
		fmt.Fprintf(&sb, "It's move %d. ", moves+1)
	}
	if status == Finished {
		sb.WriteString("Game over.\n")
	} else {
		fmt.Fprintf(&sb, "%s to move.\n", ColorName(turn))
	}
	return sb.String()
}

func (s *Session) String() string {
	return StatusLine(s.moves, s.status, s.turn) + s.board.String()
}
