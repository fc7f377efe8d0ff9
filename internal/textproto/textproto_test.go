package textproto

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/reversi/internal/engine"
	"github.com/hailam/reversi/internal/game"
)

func run(t *testing.T, script string) (string, *Protocol) {
	t.Helper()
	var out bytes.Buffer
	p := New(engine.NewEngine(), strings.NewReader(script), &out)
	p.SetLogger(log.New(io.Discard, "", 0))
	require.NoError(t, p.Run())
	return out.String(), p
}

func TestMovesAtStart(t *testing.T) {
	out, _ := run(t, "moves\n")
	assert.Equal(t, "moves c2 b3 e4 d5\n", out)
}

func TestPlayAndReply(t *testing.T) {
	out, p := run(t, "play c2\ngo\n")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "move Black c2 flips 1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "move White "), lines[1])
	assert.Equal(t, game.BlackToMove, p.Controller().State())
}

func TestPlayErrors(t *testing.T) {
	out, p := run(t, "play a1\nplay zz\nplay\n")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "error illegal move a1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "error "))
	assert.Equal(t, "error play needs a square", lines[2])

	black, white := p.Controller().Score()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
}

func TestPlayOutOfTurn(t *testing.T) {
	out, _ := run(t, "play c2\nplay b3\n")
	assert.Contains(t, out, "error not black to move (WhiteToMove)")
}

func TestGoWhenIdle(t *testing.T) {
	out, _ := run(t, "go\n")
	assert.Equal(t, "idle BlackToMove\n", out)
}

func TestSetBoardBothStuck(t *testing.T) {
	cells := "X" + strings.Repeat(".", 35)
	out, p := run(t, "setboard "+cells+" o\ngo\n")

	assert.Equal(t, "ok\nresult 1 0 Black Wins!\n", out)
	assert.Equal(t, game.GameOver, p.Controller().State())
}

func TestSetBoardWithStuckSideToMove(t *testing.T) {
	script := "setboard .XOOOO ...... ...... ...... ...... ...... x\nmoves\ngo\ngo\n"
	out, p := run(t, script)

	assert.Equal(t, "pass Black\nok\nmoves a1\nmove White a1 flips 1\nresult 0 6 White Wins!\nidle GameOver\n", out)
	assert.Equal(t, game.GameOver, p.Controller().State())
}

func TestSetBoardSide(t *testing.T) {
	rows := "...... ...... ..OX.. ..XO.. ...... ......"
	_, p := run(t, "setboard "+rows+" w\n")
	assert.Equal(t, game.WhiteToMove, p.Controller().State())

	_, p = run(t, "setboard "+rows+"\n")
	assert.Equal(t, game.BlackToMove, p.Controller().State())
}

func TestSetBoardErrors(t *testing.T) {
	out, _ := run(t, "setboard\nsetboard XO\nsetboard "+strings.Repeat(".", 36)+"z\n")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "error setboard needs a position", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "error "))
	assert.Equal(t, `error bad side "z"`, lines[2])
}

func TestDepth(t *testing.T) {
	out, p := run(t, "depth 2\ndepth -1\ndepth\n")
	assert.Equal(t, "depth 2\nerror bad depth \"-1\"\ndepth 2\n", out)
	assert.Equal(t, 2, p.engine.Depth())
}

func TestHint(t *testing.T) {
	out, p := run(t, "hint\n")

	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 2)
	assert.Equal(t, "hint", fields[0])
	assert.Contains(t, []string{"c2", "b3", "e4", "d5"}, fields[1])

	// A hint never plays the move.
	black, white := p.Controller().Score()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
}

func TestPerft(t *testing.T) {
	out, _ := run(t, "perft 1\nperft 2\n")
	assert.Contains(t, out, "Nodes: 4\n")
	assert.Contains(t, out, "Nodes: 12\n")
}

func TestPerftRejectsBadDepth(t *testing.T) {
	out, _ := run(t, "perft -1\nperft x\n")
	assert.Equal(t, "error bad depth \"-1\"\nerror bad depth \"x\"\n", out)
}

func TestBoard(t *testing.T) {
	out, _ := run(t, "d\n")
	assert.True(t, strings.HasPrefix(out, "   a b c d e f\n"))
	assert.Contains(t, out, "state BlackToMove black 2 white 2 eval 0\n")
}

func TestNewResetsGame(t *testing.T) {
	out, p := run(t, "play c2\nnew\n")
	assert.Contains(t, out, "ok\n")
	assert.Equal(t, game.BlackToMove, p.Controller().State())
	black, white := p.Controller().Score()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
}

func TestQuitAndUnknown(t *testing.T) {
	out, _ := run(t, "# comment\n\nfoo\nquit\nmoves\n")
	assert.Equal(t, "error unknown command \"foo\"\n", out)
}
