// Package board implements the 6x6 Reversi board and its capture rules.
package board

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the other side. Empty has no opponent and returns Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// String returns the cell name.
func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Rune returns the single character used in board diagrams.
func (c Cell) Rune() rune {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

// cellFromRune is the inverse of Cell.Rune. It also accepts the lower-case
// letters and the b/w shorthand.
func cellFromRune(r rune) (Cell, bool) {
	switch r {
	case '.', '-':
		return Empty, true
	case 'X', 'x', 'B', 'b':
		return Black, true
	case 'O', 'o', 'W', 'w':
		return White, true
	}
	return Empty, false
}
