package game

import (
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/reversi/internal/board"
	"github.com/hailam/reversi/internal/engine"
)

// stuckMover never finds a move, as if the search came back empty.
type stuckMover struct{ calls int }

func (m *stuckMover) Play(*board.Board) (board.Square, []board.Square, bool) {
	m.calls++
	return board.NoSquare, nil, false
}

type recorder struct {
	moves  []MoveEvent
	passes []board.Cell
	ends   []Result
}

func newTestController(t *testing.T, b *board.Board, turn board.Cell, m Mover) (*Controller, *recorder) {
	t.Helper()
	c := NewControllerFrom(b, turn, m)
	c.SetLogger(log.New(io.Discard, "", 0))

	rec := &recorder{}
	c.OnMove(func(e MoveEvent) { rec.moves = append(rec.moves, e) })
	c.OnPass(func(side board.Cell) { rec.passes = append(rec.passes, side) })
	c.OnGameOver(func(r Result) { rec.ends = append(rec.ends, r) })
	return c, rec
}

func mustParse(t *testing.T, s string) *board.Board {
	t.Helper()
	b, err := board.ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestNewController(t *testing.T) {
	c := NewController(engine.NewEngine())

	assert.Equal(t, BlackToMove, c.State())
	assert.Equal(t, board.Black, c.Turn())
	assert.Equal(t, *board.NewBoard(), *c.Board())
	assert.Equal(t, board.NoSquare, c.LastMove())
	assert.Len(t, c.ValidMoves(), 4)

	black, white := c.Score()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
}

func TestInvalidClickIgnored(t *testing.T) {
	c, rec := newTestController(t, board.NewBoard(), board.Black, engine.NewEngine())
	before := *c.Board()

	for _, sq := range []board.Square{board.Sq(0, 0), board.Sq(2, 2), board.Sq(2, 3), board.Sq(9, 9)} {
		assert.False(t, c.Click(sq), "click %s", sq)
	}

	assert.Equal(t, before, *c.Board())
	assert.Equal(t, BlackToMove, c.State())
	assert.Empty(t, rec.moves)
}

func TestBoardIsACopy(t *testing.T) {
	c := NewController(engine.NewEngine())
	snapshot := c.Board()
	snapshot.Set(board.Sq(0, 0), board.White)

	assert.Equal(t, board.Empty, c.Board().At(board.Sq(0, 0)))
}

func TestHumanThenComputer(t *testing.T) {
	c, rec := newTestController(t, board.NewBoard(), board.Black, engine.NewEngine())

	require.True(t, c.Click(board.Sq(2, 1)))
	assert.Equal(t, WhiteToMove, c.State())
	assert.Equal(t, board.Sq(2, 1), c.LastMove())
	assert.Equal(t, []board.Square{board.Sq(2, 2)}, c.LastFlips())

	black, white := c.Score()
	assert.Equal(t, 4, black)
	assert.Equal(t, 1, white)

	// Black cannot move while the computer is to play.
	assert.False(t, c.Click(board.Sq(1, 2)))

	require.True(t, c.Step())
	assert.Equal(t, BlackToMove, c.State())
	assert.Equal(t, 6, c.Board().DiscCount())

	require.Len(t, rec.moves, 2)
	assert.Equal(t, board.Black, rec.moves[0].Color)
	assert.Equal(t, board.White, rec.moves[1].Color)
	assert.Equal(t, board.White, rec.moves[1].Board.At(rec.moves[1].Square))

	// Nothing to do until the human clicks.
	assert.False(t, c.Step())
}

func TestBothStuckEndsGameOnEitherTurn(t *testing.T) {
	stuck := `
		X X X . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. . . O O O`

	for _, turn := range []board.Cell{board.Black, board.White} {
		t.Run(turn.String(), func(t *testing.T) {
			m := &stuckMover{}
			c, rec := newTestController(t, mustParse(t, stuck), turn, m)

			require.True(t, c.Step())
			assert.Equal(t, GameOver, c.State())
			assert.Equal(t, board.Empty, c.Turn())
			assert.Zero(t, m.calls)
			assert.Nil(t, c.ValidMoves())

			require.Len(t, rec.ends, 1)
			assert.Equal(t, Result{Black: 3, White: 3}, rec.ends[0])
			assert.Equal(t, "It's a Tie!", rec.ends[0].String())

			assert.False(t, c.Step())
			assert.False(t, c.Click(board.Sq(0, 3)))
			assert.Len(t, rec.ends, 1)
		})
	}
}

func TestWhitePassesAfterBlackMove(t *testing.T) {
	b := mustParse(t, `
		. O X . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. O X X X X`)
	c, rec := newTestController(t, b, board.Black, engine.NewEngine())

	require.True(t, c.Click(board.Sq(0, 0)))
	assert.Equal(t, BlackToMove, c.State(), "White has no move and is skipped")
	assert.Equal(t, []board.Cell{board.White}, rec.passes)

	require.True(t, c.Click(board.Sq(5, 0)))
	assert.Equal(t, GameOver, c.State())
	require.Len(t, rec.ends, 1)
	assert.Equal(t, Result{Black: 9, White: 0}, rec.ends[0])
	assert.Equal(t, board.Black, rec.ends[0].Winner())
	assert.Equal(t, c.Result(), rec.ends[0])
}

func TestBlackPassesAfterWhiteMove(t *testing.T) {
	b := mustParse(t, `
		. X O . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. X O O O O`)
	c, rec := newTestController(t, b, board.White, engine.NewEngine())

	require.True(t, c.Step())
	assert.Equal(t, WhiteToMove, c.State(), "Black has no move and is skipped")
	assert.Equal(t, []board.Cell{board.Black}, rec.passes)

	require.True(t, c.Step())
	assert.Equal(t, GameOver, c.State())
	require.Len(t, rec.ends, 1)
	assert.Equal(t, Result{Black: 0, White: 9}, rec.ends[0])
	assert.Equal(t, "White Wins!", rec.ends[0].String())
}

func TestStuckSideToMovePassesAtStart(t *testing.T) {
	b := mustParse(t, `
		. X O O O O
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .`)
	c, rec := newTestController(t, b, board.Black, engine.NewEngine())

	assert.Equal(t, WhiteToMove, c.State(), "Black cannot move, White can")
	assert.Equal(t, []board.Square{board.Sq(0, 0)}, c.ValidMoves())

	require.True(t, c.Step())
	require.Len(t, rec.moves, 1)
	assert.Equal(t, board.Sq(0, 0), rec.moves[0].Square)
	assert.Equal(t, GameOver, c.State())
	assert.Equal(t, Result{Black: 0, White: 6}, c.Result())

	// The same from White's side: White is stuck, Black is not.
	b = mustParse(t, `
		. O X X X X
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .`)
	c, _ = newTestController(t, b, board.White, engine.NewEngine())
	assert.Equal(t, BlackToMove, c.State())
}

func TestSearchExhaustedHandsTurnToBlack(t *testing.T) {
	m := &stuckMover{}
	c, rec := newTestController(t, board.NewBoard(), board.White, m)

	require.True(t, c.Step())
	assert.Equal(t, 1, m.calls)
	assert.Equal(t, BlackToMove, c.State())
	assert.Equal(t, []board.Cell{board.White}, rec.passes)
	assert.Empty(t, rec.moves)
}

func TestSearchExhaustedWithBlackStuckEndsGame(t *testing.T) {
	b := mustParse(t, `
		. X O O O O
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .
		. . . . . .`)
	m := &stuckMover{}
	c, rec := newTestController(t, b, board.White, m)

	require.True(t, c.Step())
	assert.Equal(t, GameOver, c.State())
	assert.Equal(t, Result{Black: 1, White: 4}, c.Result())
	assert.Len(t, rec.ends, 1)
}

func TestFullGameAgainstEngine(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for game := 0; game < 5; game++ {
		c, rec := newTestController(t, board.NewBoard(), board.Black, engine.NewEngine())
		discs := c.Board().DiscCount()

		for i := 0; i < 200 && c.State() != GameOver; i++ {
			c.Step()
			if c.State() == BlackToMove {
				moves := c.ValidMoves()
				require.NotEmpty(t, moves, "Black to move without a legal move")
				require.True(t, c.Click(moves[rng.Intn(len(moves))]))
			}

			n := c.Board().DiscCount()
			require.GreaterOrEqual(t, n, discs)
			discs = n
		}

		require.Equal(t, GameOver, c.State())
		require.Len(t, rec.ends, 1)
		black, white := c.Score()
		assert.Equal(t, Result{Black: black, White: white}, rec.ends[0])
		assert.False(t, c.Board().HasValidMove(board.Black) && c.Board().HasValidMove(board.White))
	}
}

func TestReset(t *testing.T) {
	c, rec := newTestController(t, board.NewBoard(), board.Black, engine.NewEngine())
	require.True(t, c.Click(board.Sq(1, 2)))
	require.True(t, c.Step())

	c.Reset()
	assert.Equal(t, BlackToMove, c.State())
	assert.Equal(t, *board.NewBoard(), *c.Board())
	assert.Equal(t, board.NoSquare, c.LastMove())

	require.True(t, c.Click(board.Sq(2, 1)))
	assert.Len(t, rec.moves, 3, "callbacks survive a reset")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "BlackToMove", BlackToMove.String())
	assert.Equal(t, "GameOver", GameOver.String())
	assert.Equal(t, "State(9)", State(9).String())
}
