package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, White, b.At(Sq(2, 2)))
	assert.Equal(t, White, b.At(Sq(3, 3)))
	assert.Equal(t, Black, b.At(Sq(2, 3)))
	assert.Equal(t, Black, b.At(Sq(3, 2)))
	assert.Equal(t, 2, b.Count(Black))
	assert.Equal(t, 2, b.Count(White))
	assert.Equal(t, 32, b.Count(Empty))
	assert.Equal(t, 4, b.DiscCount())
	assert.Len(t, b.Cells(), NumCells)
}

func TestCopyDoesNotAlias(t *testing.T) {
	b := NewBoard()
	c := b.Copy()

	c.Set(Sq(0, 0), Black)
	_, ok := c.ApplyMove(Sq(2, 1), Black)
	require.True(t, ok)

	assert.Equal(t, Empty, b.At(Sq(0, 0)))
	assert.Equal(t, White, b.At(Sq(2, 2)))
	assert.Equal(t, *NewBoard(), *b)
}

func TestAtOffBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, Empty, b.At(Sq(-1, 0)))
	assert.Equal(t, Empty, b.At(Sq(0, Size)))
}

func TestSquareNames(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
	}{
		{Sq(0, 0), "a1"},
		{Sq(2, 1), "b3"},
		{Sq(5, 5), "f6"},
		{Sq(1, 2), "c2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.sq.String())

			got, err := ParseSquare(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.sq, got)
		})
	}

	assert.Equal(t, "-", NoSquare.String())
}

func TestParseSquareErrors(t *testing.T) {
	for _, s := range []string{"", "a", "a0", "g1", "a7", "a10", "11"} {
		_, err := ParseSquare(s)
		assert.ErrorIs(t, err, ErrBadSquare, "input %q", s)
	}

	sq, err := ParseSquare("C4")
	require.NoError(t, err)
	assert.Equal(t, Sq(3, 2), sq)
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := NewBoard()
	b.ApplyMove(Sq(2, 1), Black)

	diagram := `
		. . . . . .
		. . . . . .
		. X X X . .
		. . X O . .
		. . . . . .
		. . . . . .`
	parsed, err := ParseBoard(diagram)
	require.NoError(t, err)
	assert.Equal(t, *b, *parsed)

	assert.Contains(t, b.String(), "3  . X X X . .")
	assert.Contains(t, b.String(), "   a b c d e f")
}

func TestParseBoardErrors(t *testing.T) {
	_, err := ParseBoard("....")
	assert.ErrorIs(t, err, ErrBadBoard)

	_, err = ParseBoard("Z...................................")
	assert.ErrorIs(t, err, ErrBadBoard)

	tooLong := ""
	for i := 0; i < NumCells+1; i++ {
		tooLong += "."
	}
	_, err = ParseBoard(tooLong)
	assert.ErrorIs(t, err, ErrBadBoard)
}

func TestCellOpponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.Equal(t, "Black", Black.String())
	assert.Equal(t, 'O', White.Rune())
}

func TestDirections(t *testing.T) {
	seen := make(map[Direction]bool)
	for _, d := range Directions {
		assert.False(t, d.DR == 0 && d.DC == 0)
		assert.True(t, d.DR >= -1 && d.DR <= 1 && d.DC >= -1 && d.DC <= 1)
		seen[d] = true
	}
	assert.Len(t, seen, 8)
}
