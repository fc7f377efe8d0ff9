package board

import (
	"errors"
	"fmt"
)

// Size is the board dimension.
const Size = 6

// NumCells is the number of squares on the board.
const NumCells = Size * Size

// ErrBadSquare is returned when a square name cannot be parsed.
var ErrBadSquare = errors.New("invalid square")

// Square addresses one cell by row and column, both in [0, Size).
// Row 0 is the top row as drawn on screen.
type Square struct {
	Row, Col int
}

// NoSquare marks the absence of a square.
var NoSquare = Square{Row: -1, Col: -1}

// Direction is a unit step on the board.
type Direction struct {
	DR, DC int
}

// Directions holds the 8 compass directions. Every rule that walks the board
// walks all of them.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

// Step returns the neighbouring square in direction d.
func (sq Square) Step(d Direction) Square {
	return Square{Row: sq.Row + d.DR, Col: sq.Col + d.DC}
}

// String returns the algebraic name, column letter then 1-based row ("a1".."f6").
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string(rune('a'+sq.Col)) + string(rune('1'+sq.Row))
}

// ParseSquare parses an algebraic square name such as "c2".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	col := int(s[0]) - 'a'
	if s[0] >= 'A' && s[0] <= 'Z' {
		col = int(s[0]) - 'A'
	}
	sq := Square{Row: int(s[1]) - '1', Col: col}
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return sq, nil
}
