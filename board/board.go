// Package board implements the 8x8 Othello grid and its notations.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of ranks and files on the board.
const Size = 8

var (
	// ErrOutOfRange is returned for a coordinate outside the 8x8 grid.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidState is returned when a board does not hold exactly 8x8 valid cells.
	ErrInvalidState = errors.New("invalid board state")
)

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Dark
	Light
)

// Valid reports whether c is one of the three permitted values.
func (c Cell) Valid() bool {
	return c <= Light
}

// Opponent returns the opposing colour. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	}
	return Empty
}

// Glyph returns the character used by the text rendering.
func (c Cell) Glyph() rune {
	switch c {
	case Dark:
		return '○'
	case Light:
		return '●'
	}
	return ' '
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Dark:
		return "dark"
	case Light:
		return "light"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Board is an 8x8 grid indexed as [rank][file]. The zero value is a blank board.
// Boards are values: copying one never shares cells.
type Board struct {
	cells [Size][Size]Cell
}

// Blank returns a board with every cell empty.
func Blank() Board {
	return Board{}
}

// Starting returns the canonical opening layout.
func Starting() Board {
	var b Board
	b.cells[3][3] = Light
	b.cells[3][4] = Dark
	b.cells[4][3] = Dark
	b.cells[4][4] = Light
	return b
}

// FromRows builds a board from a rank-major grid, validating its shape and values.
func FromRows(rows [][]Cell) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: %d ranks", ErrInvalidState, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: rank %d has %d files", ErrInvalidState, r, len(row))
		}
		for f, c := range row {
			if !c.Valid() {
				return b, fmt.Errorf("%w: %v at %v", ErrInvalidState, c, Pos{r, f})
			}
			b.cells[r][f] = c
		}
	}
	return b, nil
}

// Get returns the cell at (rank, file).
func (b Board) Get(rank, file int) (Cell, error) {
	p := Pos{Rank: rank, File: file}
	if !p.InBounds() {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, rank, file)
	}
	return b.cells[rank][file], nil
}

// At returns the cell at p. p must be in bounds.
func (b Board) At(p Pos) Cell {
	return b.cells[p.Rank][p.File]
}

// WithCellSet returns a copy of b with (rank, file) set to c. No game rules are checked.
func (b Board) WithCellSet(rank, file int, c Cell) (Board, error) {
	p := Pos{Rank: rank, File: file}
	if !p.InBounds() {
		return b, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, rank, file)
	}
	if !c.Valid() {
		return b, fmt.Errorf("%w: %v", ErrInvalidState, c)
	}
	b.cells[rank][file] = c
	return b, nil
}

// IsValid reports whether every cell holds a permitted value.
// The dimensions are fixed by the type.
func (b Board) IsValid() bool {
	for r := range b.cells {
		for f := range b.cells[r] {
			if !b.cells[r][f].Valid() {
				return false
			}
		}
	}
	return true
}

// Count returns the number of cells holding c.
func (b Board) Count(c Cell) int {
	n := 0
	for r := range b.cells {
		for f := range b.cells[r] {
			if b.cells[r][f] == c {
				n++
			}
		}
	}
	return n
}

// Full reports whether no empty cell remains.
func (b Board) Full() bool {
	return b.Count(Empty) == 0
}

// Rows returns a rank-major copy of the grid.
func (b Board) Rows() [][]Cell {
	rows := make([][]Cell, Size)
	for r := range rows {
		rows[r] = make([]Cell, Size)
		copy(rows[r], b.cells[r][:])
	}
	return rows
}

const (
	borderTop    = "┌───┬───┬───┬───┬───┬───┬───┬───┐\n"
	borderMiddle = "├───┼───┼───┼───┼───┼───┼───┼───┤\n"
	borderBottom = "└───┴───┴───┴───┴───┴───┴───┴───┘\n"
)

// Render draws the board as a grid of 3-character cells with box-drawing borders.
func (b Board) Render() (string, error) {
	if !b.IsValid() {
		return "", ErrInvalidState
	}
	var sb strings.Builder
	sb.WriteString(borderTop)
	for r := 0; r < Size; r++ {
		for f := 0; f < Size; f++ {
			sb.WriteString("│ ")
			sb.WriteRune(b.cells[r][f].Glyph())
			sb.WriteString(" ")
		}
		sb.WriteString("│\n")
		if r != Size-1 {
			sb.WriteString(borderMiddle)
		} else {
			sb.WriteString(borderBottom)
		}
	}
	return sb.String(), nil
}

func (b Board) String() string {
	s, err := b.Render()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return s
}
