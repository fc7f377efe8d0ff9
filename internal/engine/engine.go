package engine

import (
	"time"

	"github.com/hailam/reversi/internal/board"
)

// DefaultDepth is the number of plies searched below each candidate move.
const DefaultDepth = 3

// SearchInfo describes a finished root search.
type SearchInfo struct {
	Side  board.Cell
	Depth int
	Move  board.Square
	Score int // White minus Black at the searched horizon
	Nodes uint64
	Time  time.Duration
}

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // 1 ply below the move
	Medium                   // DefaultDepth
	Hard                     // 5 plies
)

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// DifficultySettings maps difficulty to search depth.
var DifficultySettings = map[Difficulty]int{
	Easy:   1,
	Medium: DefaultDepth,
	Hard:   5,
}

// Engine is the computer player. It always plays White in the game, but can
// analyse either side.
type Engine struct {
	searcher *Searcher
	depth    int

	// Callbacks
	OnInfo func(SearchInfo)
}

// NewEngine creates an engine searching DefaultDepth plies.
func NewEngine() *Engine {
	return &Engine{
		searcher: NewSearcher(),
		depth:    DefaultDepth,
	}
}

// SetDepth sets the search depth. Values below zero are clamped to zero,
// which scores each candidate by material alone.
func (e *Engine) SetDepth(depth int) {
	if depth < 0 {
		depth = 0
	}
	e.depth = depth
}

// Depth returns the search depth.
func (e *Engine) Depth() int {
	return e.depth
}

// SetDifficulty sets the search depth from a preset.
func (e *Engine) SetDifficulty(d Difficulty) {
	depth, ok := DifficultySettings[d]
	if !ok {
		depth = DefaultDepth
	}
	e.SetDepth(depth)
}

// BestMove searches every legal move of side and returns the best one with
// its score. White keeps the strictly highest score and Black the strictly
// lowest, so the first move in row-major order wins ties. ok is false when
// side has no legal move.
func (e *Engine) BestMove(b *board.Board, side board.Cell) (move board.Square, score int, ok bool) {
	moves := b.ValidMoves(side)
	if len(moves) == 0 {
		return board.NoSquare, 0, false
	}

	e.searcher.Reset()
	start := time.Now()

	maximizing := side == board.White
	move = board.NoSquare
	score = Infinity
	if maximizing {
		score = -Infinity
	}
	for _, m := range moves {
		child := b.Copy()
		child.ApplyMove(m, side)
		s := e.searcher.AlphaBeta(child, e.depth, -Infinity, Infinity, !maximizing)
		if maximizing && s > score || !maximizing && s < score {
			score = s
			move = m
		}
	}

	if e.OnInfo != nil {
		e.OnInfo(SearchInfo{
			Side:  side,
			Depth: e.depth,
			Move:  move,
			Score: score,
			Nodes: e.searcher.Nodes(),
			Time:  time.Since(start),
		})
	}
	return move, score, true
}

// ChooseMove picks White's move. ok is false when White has no legal move.
func (e *Engine) ChooseMove(b *board.Board) (board.Square, bool) {
	move, _, ok := e.BestMove(b, board.White)
	return move, ok
}

// Play chooses White's move and applies it to b, returning the move and the
// flipped discs. ok is false, with b untouched, when White has no legal move.
func (e *Engine) Play(b *board.Board) (board.Square, []board.Square, bool) {
	move, ok := e.ChooseMove(b)
	if !ok {
		return board.NoSquare, nil, false
	}
	flips, ok := b.ApplyMove(move, board.White)
	return move, flips, ok
}

// Nodes returns the number of nodes visited by the last search.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}

// Evaluate returns the static evaluation of a position.
func (e *Engine) Evaluate(b *board.Board) int {
	return Evaluate(b)
}

// Perft counts leaf nodes depth plies below b with side to move (for
// debugging move generation). A stuck side passes; a finished game is a leaf.
func (e *Engine) Perft(b *board.Board, side board.Cell, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := b.ValidMoves(side)
	if len(moves) == 0 {
		if !b.HasValidMove(side.Opponent()) {
			return 1
		}
		return e.Perft(b, side.Opponent(), depth-1)
	}
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := b.Copy()
		child.ApplyMove(m, side)
		nodes += e.Perft(child, side.Opponent(), depth-1)
	}
	return nodes
}
