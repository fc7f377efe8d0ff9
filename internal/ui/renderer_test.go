package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hailam/reversi/internal/board"
)

func testRenderer() *Renderer {
	return &Renderer{theme: DefaultTheme(), boardSize: BoardSize, squareSize: SquareSize, scale: 1}
}

func TestScreenToSquare(t *testing.T) {
	r := testRenderer()

	tests := []struct {
		x, y int
		want board.Square
	}{
		{0, 0, board.Sq(0, 0)},
		{79, 79, board.Sq(0, 0)},
		{80, 0, board.Sq(0, 1)},
		{0, 80, board.Sq(1, 0)},
		{250, 170, board.Sq(2, 3)},
		{479, 479, board.Sq(5, 5)},
		{480, 10, board.NoSquare},
		{10, 480, board.NoSquare},
		{-1, 10, board.NoSquare},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ScreenToSquare(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
}

func TestSquareToScreenRoundTrip(t *testing.T) {
	r := testRenderer()
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := board.Sq(row, col)
			x, y := r.SquareToScreen(sq)
			assert.Equal(t, sq, r.ScreenToSquare(x, y))
			assert.Equal(t, sq, r.ScreenToSquare(x+SquareSize-1, y+SquareSize-1))
		}
	}
}

func TestSetMouseScalesToLogical(t *testing.T) {
	ih := NewInputHandler()

	ih.setMouse(200, 100, 2.0)
	x, y := ih.MousePosition()
	assert.Equal(t, 100, x)
	assert.Equal(t, 50, y)

	// Scales below 1 are treated as 1.
	ih.setMouse(200, 100, 0.5)
	x, y = ih.MousePosition()
	assert.Equal(t, 200, x)
	assert.Equal(t, 100, y)

	assert.True(t, ih.IsInBounds(150, 50, 100, 100))
	assert.False(t, ih.IsInBounds(0, 0, 100, 100))
}
