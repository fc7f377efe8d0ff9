// Package game runs a human-versus-computer Reversi game: turn order, passes
// and the end-of-game handoff.
package game

import (
	"fmt"

	"github.com/hailam/reversi/internal/board"
)

// State is the controller state.
type State int

const (
	BlackToMove State = iota
	WhiteToMove
	GameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case BlackToMove:
		return "BlackToMove"
	case WhiteToMove:
		return "WhiteToMove"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the final disc count handed to the result screen.
type Result struct {
	Black int
	White int
}

// Winner returns the side with more discs, or board.Empty for a tie.
func (r Result) Winner() board.Cell {
	switch {
	case r.Black > r.White:
		return board.Black
	case r.White > r.Black:
		return board.White
	default:
		return board.Empty
	}
}

// String returns the outcome line shown on the result screen.
func (r Result) String() string {
	switch r.Winner() {
	case board.Black:
		return "Black Wins!"
	case board.White:
		return "White Wins!"
	default:
		return "It's a Tie!"
	}
}

// MoveEvent describes an applied move.
type MoveEvent struct {
	Color  board.Cell
	Square board.Square
	Flips  []board.Square
	Board  board.Board // snapshot after the move
}
