package board

import (
	"fmt"
	"strings"
	"unicode"
)

// Algebraic coordinate system:
// - Files: a-h (left to right), file index 0-7
// - Ranks: 8-1 (top to bottom), so rank index 0 is labelled "8"
// - Example: (2, 3) is d6, (7, 0) is a1

// Pos is a (rank, file) coordinate, both zero-indexed from the top-left.
type Pos struct {
	Rank int
	File int
}

// InBounds reports whether p lies on the board.
func (p Pos) InBounds() bool {
	return p.Rank >= 0 && p.Rank < Size && p.File >= 0 && p.File < Size
}

// String returns the algebraic label of p, e.g. "d6".
func (p Pos) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(p.File), Size-p.Rank)
}

// ParsePos converts an algebraic label such as "d6" into a Pos.
func ParsePos(s string) (Pos, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Pos{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	file := int(s[0]) - 'a'
	label := int(s[1]) - '0'
	p := Pos{Rank: Size - label, File: file}
	if label < 1 || label > Size || !p.InBounds() {
		return Pos{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return p, nil
}

// Compact position notation: 64 cells in rank-major order, '-' empty,
// '*' dark, 'O' light. Whitespace is ignored.

const (
	compactEmpty = '-'
	compactDark  = '*'
	compactLight = 'O'
)

// Compact returns the 64-character position string of b.
func (b Board) Compact() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := 0; r < Size; r++ {
		for f := 0; f < Size; f++ {
			switch b.cells[r][f] {
			case Dark:
				sb.WriteByte(compactDark)
			case Light:
				sb.WriteByte(compactLight)
			default:
				sb.WriteByte(compactEmpty)
			}
		}
	}
	return sb.String()
}

// ParseCompact reads a position written by Compact.
func ParseCompact(s string) (Board, error) {
	var b Board
	i := 0
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			continue
		}
		if i >= Size*Size {
			return Board{}, fmt.Errorf("%w: position longer than %d cells", ErrInvalidState, Size*Size)
		}
		var c Cell
		switch ch {
		case compactEmpty:
			c = Empty
		case compactDark:
			c = Dark
		case compactLight:
			c = Light
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q in position", ErrInvalidState, ch)
		}
		b.cells[i/Size][i%Size] = c
		i++
	}
	if i != Size*Size {
		return Board{}, fmt.Errorf("%w: position has %d cells", ErrInvalidState, i)
	}
	return b, nil
}
