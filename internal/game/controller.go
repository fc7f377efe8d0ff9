package game

import (
	"log"

	"github.com/hailam/reversi/internal/board"
)

// Mover picks and applies the computer's (White's) move. ok is false when
// White has no legal move. *engine.Engine implements it.
type Mover interface {
	Play(b *board.Board) (move board.Square, flips []board.Square, ok bool)
}

// Controller owns the live board and the turn state. Black is the human,
// White the computer. It is driven by a single event loop and is not safe
// for concurrent use.
type Controller struct {
	board *board.Board
	state State
	mover Mover

	lastMove  board.Square
	lastFlips []board.Square
	result    Result

	logger *log.Logger

	onMove     func(MoveEvent)
	onPass     func(board.Cell)
	onGameOver func(Result)
}

// NewController starts a game from the opening position with Black to move.
func NewController(m Mover) *Controller {
	return NewControllerFrom(board.NewBoard(), board.Black, m)
}

// NewControllerFrom starts a game from an arbitrary position. The board is
// copied. turn must be board.Black or board.White; if that side has no legal
// move but the other does, the turn passes before any callback is set.
func NewControllerFrom(b *board.Board, turn board.Cell, m Mover) *Controller {
	c := &Controller{
		mover:  m,
		logger: log.Default(),
	}
	c.reset(b.Copy(), turn)
	return c
}

func (c *Controller) reset(b *board.Board, turn board.Cell) {
	c.board = b
	c.state = BlackToMove
	if turn == board.White {
		c.state = WhiteToMove
	}
	c.lastMove = board.NoSquare
	c.lastFlips = nil
	c.result = Result{}

	// The side to move passes straight away when only its opponent can move.
	// A position where neither side can move is ended by Step.
	side := c.Turn()
	if !b.HasValidMove(side) && b.HasValidMove(side.Opponent()) {
		c.logger.Printf("[GAME] %s has no legal move and passes", side)
		c.state = BlackToMove
		if side == board.Black {
			c.state = WhiteToMove
		}
	}
}

// Reset starts a new game from the opening position. Callbacks are kept.
func (c *Controller) Reset() {
	c.reset(board.NewBoard(), board.Black)
	c.logger.Printf("[GAME] New game")
}

// SetLogger replaces the logger used for state transitions.
func (c *Controller) SetLogger(l *log.Logger) {
	c.logger = l
}

// OnMove registers a callback run after every applied move.
func (c *Controller) OnMove(fn func(MoveEvent)) {
	c.onMove = fn
}

// OnPass registers a callback run when a side is skipped for lack of moves.
func (c *Controller) OnPass(fn func(board.Cell)) {
	c.onPass = fn
}

// OnGameOver registers a callback run once when the game ends.
func (c *Controller) OnGameOver(fn func(Result)) {
	c.onGameOver = fn
}

// Board returns a copy of the live board for drawing.
func (c *Controller) Board() *board.Board {
	return c.board.Copy()
}

// State returns the controller state.
func (c *Controller) State() State {
	return c.state
}

// Turn returns the side to move, or board.Empty once the game is over.
func (c *Controller) Turn() board.Cell {
	switch c.state {
	case BlackToMove:
		return board.Black
	case WhiteToMove:
		return board.White
	default:
		return board.Empty
	}
}

// Score returns the current disc counts.
func (c *Controller) Score() (black, white int) {
	return c.board.Count(board.Black), c.board.Count(board.White)
}

// LastMove returns the most recent move, or board.NoSquare.
func (c *Controller) LastMove() board.Square {
	return c.lastMove
}

// LastFlips returns the discs flipped by the most recent move.
func (c *Controller) LastFlips() []board.Square {
	return c.lastFlips
}

// Result returns the final counts. It is only meaningful in GameOver.
func (c *Controller) Result() Result {
	return c.result
}

// ValidMoves returns the legal moves of the side to move.
func (c *Controller) ValidMoves() []board.Square {
	if c.state == GameOver {
		return nil
	}
	return c.board.ValidMoves(c.Turn())
}

// Click plays the human's (Black's) move at sq. Clicks outside BlackToMove
// and illegal squares are ignored and leave everything unchanged.
func (c *Controller) Click(sq board.Square) bool {
	if c.state != BlackToMove {
		return false
	}

	flips, ok := c.board.ApplyMove(sq, board.Black)
	if !ok {
		return false
	}
	c.moved(board.Black, sq, flips)

	if !c.board.HasValidMove(board.White) {
		if !c.board.HasValidMove(board.Black) {
			c.finish()
			return true
		}
		c.pass(board.White)
		return true
	}
	c.state = WhiteToMove
	return true
}

// Step runs one controller iteration: the global check that ends the game
// when neither side can move, then the computer's turn if it is White to
// move. It reports whether anything changed.
func (c *Controller) Step() bool {
	if c.state == GameOver {
		return false
	}

	if !c.board.HasValidMove(board.Black) && !c.board.HasValidMove(board.White) {
		c.finish()
		return true
	}

	if c.state != WhiteToMove {
		return false
	}

	move, flips, ok := c.mover.Play(c.board)
	if !ok {
		if !c.board.HasValidMove(board.Black) {
			c.finish()
			return true
		}
		c.pass(board.White)
		c.state = BlackToMove
		return true
	}
	c.moved(board.White, move, flips)

	if !c.board.HasValidMove(board.Black) {
		if !c.board.HasValidMove(board.White) {
			c.finish()
			return true
		}
		c.pass(board.Black)
		return true
	}
	c.state = BlackToMove
	return true
}

func (c *Controller) moved(color board.Cell, sq board.Square, flips []board.Square) {
	c.lastMove = sq
	c.lastFlips = flips
	c.logger.Printf("[MOVE] %s plays %s, flips %d", color, sq, len(flips))

	if c.onMove != nil {
		c.onMove(MoveEvent{
			Color:  color,
			Square: sq,
			Flips:  flips,
			Board:  *c.board,
		})
	}
}

func (c *Controller) pass(color board.Cell) {
	c.logger.Printf("[GAME] %s has no legal move and passes", color)
	if c.onPass != nil {
		c.onPass(color)
	}
}

func (c *Controller) finish() {
	black, white := c.Score()
	c.state = GameOver
	c.result = Result{Black: black, White: white}
	c.logger.Printf("[GAME] Game over: Black %d, White %d (%s)", black, white, c.result)

	if c.onGameOver != nil {
		c.onGameOver(c.result)
	}
}
