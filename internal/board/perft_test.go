package board

import "testing"

// perft counts the leaf nodes at the given depth. A side without a legal move
// passes, which costs a ply; the game ends when neither side can move.
func perft(b *Board, c Cell, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.ValidMoves(c)
	if len(moves) == 0 {
		if !b.HasValidMove(c.Opponent()) {
			return 1
		}
		return perft(b, c.Opponent(), depth-1)
	}
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		child := b.Copy()
		child.ApplyMove(m, c)
		nodes += perft(child, c.Opponent(), depth-1)
	}
	return nodes
}

// TestPerftStartingPosition checks the first plies from the opening cross.
func TestPerftStartingPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 4},
		{2, 12},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, Black, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftOpeningSymmetry relies on the opening cross being symmetric under
// both diagonal reflections: every first move must root a subtree of the
// same size.
func TestPerftOpeningSymmetry(t *testing.T) {
	b := NewBoard()

	for depth := 1; depth <= 5; depth++ {
		var first int64 = -1
		for _, m := range b.ValidMoves(Black) {
			child := b.Copy()
			child.ApplyMove(m, Black)
			n := perft(child, White, depth)
			if first < 0 {
				first = n
				continue
			}
			if n != first {
				t.Errorf("depth %d: subtree under %s has %d nodes, want %d", depth, m, n, first)
			}
		}
	}
}
