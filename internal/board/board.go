package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrBadBoard is returned when a board diagram cannot be parsed.
var ErrBadBoard = errors.New("invalid board")

// Board is the 6x6 grid of cells. It is a plain value: assigning or copying a
// Board never shares storage with the original.
type Board [Size][Size]Cell

// NewBoard returns the opening position: the centre cross with White on the
// (2,2)-(3,3) diagonal and Black on the other.
func NewBoard() *Board {
	b := &Board{}
	b[2][2], b[3][3] = White, White
	b[2][3], b[3][2] = Black, Black
	return b
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// At returns the cell at sq. Off-board squares read as Empty.
func (b *Board) At(sq Square) Cell {
	if !sq.Valid() {
		return Empty
	}
	return b[sq.Row][sq.Col]
}

// Set stores c at sq.
func (b *Board) Set(sq Square, c Cell) {
	b[sq.Row][sq.Col] = c
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == c {
				n++
			}
		}
	}
	return n
}

// DiscCount returns the number of occupied cells.
func (b *Board) DiscCount() int {
	return NumCells - b.Count(Empty)
}

// Cells returns all 36 cells in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, NumCells)
	for row := 0; row < Size; row++ {
		cells = append(cells, b[row][:]...)
	}
	return cells
}

// String returns a diagram with column letters and row numbers.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f\n")
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d  ", row+1)
		for col := 0; col < Size; col++ {
			sb.WriteRune(b[row][col].Rune())
			if col < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads 36 cell characters in row-major order ('.', 'X', 'O').
// Whitespace is ignored, so the body of String() without the labels parses too.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	i := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		c, ok := cellFromRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q at cell %d", ErrBadBoard, r, i)
		}
		if i >= NumCells {
			return nil, fmt.Errorf("%w: more than %d cells", ErrBadBoard, NumCells)
		}
		b[i/Size][i%Size] = c
		i++
	}
	if i != NumCells {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrBadBoard, i, NumCells)
	}
	return b, nil
}
