package engine

import "github.com/hailam/reversi/internal/board"

// Evaluate scores a position from White's point of view: White discs minus
// Black discs. Only material counts; corners and edges carry no extra weight.
func Evaluate(b *board.Board) int {
	return b.Count(board.White) - b.Count(board.Black)
}
