// Package engine implements the computer player: a material evaluator and a
// depth-bounded minimax search with alpha-beta pruning.
package engine

import "github.com/hailam/reversi/internal/board"

// Infinity bounds every score. Real scores lie in [-36, 36].
const Infinity = 30000

// Searcher runs alpha-beta searches and counts the nodes it visits.
// It is not safe for concurrent use.
type Searcher struct {
	nodes uint64
}

// NewSearcher creates a new searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Reset clears the node counter.
func (s *Searcher) Reset() {
	s.nodes = 0
}

// Nodes returns the number of nodes visited since the last Reset.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// terminal reports whether the search stops at b. A side with no legal move
// ends the line even though the real game would pass instead; see DESIGN.md.
func terminal(b *board.Board, depth int) bool {
	return depth == 0 || !b.HasValidMove(board.Black) || !b.HasValidMove(board.White)
}

// AlphaBeta returns the minimax value of b searched depth plies deep.
// The maximizing side plays White, the minimizing side Black. Children are
// searched on copies, so b is never modified.
func (s *Searcher) AlphaBeta(b *board.Board, depth, alpha, beta int, maximizing bool) int {
	s.nodes++

	if terminal(b, depth) {
		return Evaluate(b)
	}

	if maximizing {
		best := -Infinity
		for _, m := range b.ValidMoves(board.White) {
			child := b.Copy()
			child.ApplyMove(m, board.White)
			score := s.AlphaBeta(child, depth-1, alpha, beta, false)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range b.ValidMoves(board.Black) {
		child := b.Copy()
		child.ApplyMove(m, board.Black)
		score := s.AlphaBeta(child, depth-1, alpha, beta, true)
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// AlphaBeta searches b with a fresh Searcher.
func AlphaBeta(b *board.Board, depth, alpha, beta int, maximizing bool) int {
	return NewSearcher().AlphaBeta(b, depth, alpha, beta, maximizing)
}

// Minimax is AlphaBeta without pruning. It visits the whole tree and exists
// to check that pruning never changes a score.
func Minimax(b *board.Board, depth int, maximizing bool) int {
	if terminal(b, depth) {
		return Evaluate(b)
	}

	side, best := board.Black, Infinity
	if maximizing {
		side, best = board.White, -Infinity
	}
	for _, m := range b.ValidMoves(side) {
		child := b.Copy()
		child.ApplyMove(m, side)
		score := Minimax(child, depth-1, !maximizing)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}
	return best
}
