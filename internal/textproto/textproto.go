// Package textproto drives a Reversi game over a line-oriented text protocol,
// one command per line. It is meant for scripting, testing and debugging the
// rule engine and search without a window.
package textproto

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/reversi/internal/board"
	"github.com/hailam/reversi/internal/engine"
	"github.com/hailam/reversi/internal/game"
)

// Protocol implements the text protocol.
type Protocol struct {
	engine     *engine.Engine
	controller *game.Controller

	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

// New creates a protocol handler reading commands from in and writing
// replies to out. The game starts from the opening position.
func New(eng *engine.Engine, in io.Reader, out io.Writer) *Protocol {
	p := &Protocol{
		engine: eng,
		in:     in,
		out:    out,
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
	p.setController(board.NewBoard(), board.Black)
	return p
}

// SetLogger replaces the logger used for game transitions.
func (p *Protocol) SetLogger(l *log.Logger) {
	p.logger = l
	p.controller.SetLogger(l)
}

// Controller returns the current game.
func (p *Protocol) Controller() *game.Controller {
	return p.controller
}

func (p *Protocol) setController(b *board.Board, turn board.Cell) {
	c := game.NewControllerFrom(b, turn, p.engine)
	c.SetLogger(p.logger)
	c.OnMove(func(ev game.MoveEvent) {
		p.printf("move %s %s flips %d\n", ev.Color, ev.Square, len(ev.Flips))
	})
	c.OnPass(func(side board.Cell) {
		p.printf("pass %s\n", side)
	})
	c.OnGameOver(func(r game.Result) {
		p.printf("result %d %d %s\n", r.Black, r.White, r)
	})
	p.controller = c

	// A side to move without a legal move has already been passed.
	if c.State() != game.GameOver && c.Turn() != turn {
		p.printf("pass %s\n", turn)
	}
}

func (p *Protocol) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Run reads commands until quit or end of input.
func (p *Protocol) Run() error {
	scanner := bufio.NewScanner(p.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "new":
			p.handleNew()
		case "board", "d":
			p.handleBoard()
		case "setboard":
			p.handleSetBoard(args)
		case "moves":
			p.handleMoves()
		case "play":
			p.handlePlay(args)
		case "go":
			p.handleGo()
		case "hint":
			p.handleHint()
		case "depth":
			p.handleDepth(args)
		case "perft":
			p.handlePerft(args)
		case "quit":
			return nil
		default:
			p.printf("error unknown command %q\n", cmd)
		}
	}
	return scanner.Err()
}

// handleNew starts a new game.
func (p *Protocol) handleNew() {
	p.controller.Reset()
	p.printf("ok\n")
}

// handleBoard prints the board, the side to move, the score and the static
// evaluation.
func (p *Protocol) handleBoard() {
	black, white := p.controller.Score()
	p.printf("%s", p.controller.Board().String())
	p.printf("state %s black %d white %d eval %d\n",
		p.controller.State(), black, white, p.engine.Evaluate(p.controller.Board()))
}

// handleSetBoard replaces the game with an arbitrary position.
// Format: setboard <36 cells> [x|o]
func (p *Protocol) handleSetBoard(args []string) {
	if len(args) == 0 {
		p.printf("error setboard needs a position\n")
		return
	}

	cells := strings.Join(args, "")
	turn := board.Black
	if len(cells) == board.NumCells+1 {
		switch strings.ToLower(cells[board.NumCells:]) {
		case "x", "b":
		case "o", "w":
			turn = board.White
		default:
			p.printf("error bad side %q\n", cells[board.NumCells:])
			return
		}
		cells = cells[:board.NumCells]
	}

	b, err := board.ParseBoard(cells)
	if err != nil {
		p.printf("error %v\n", err)
		return
	}
	p.setController(b, turn)
	p.printf("ok\n")
}

// handleMoves lists the legal moves of the side to move.
func (p *Protocol) handleMoves() {
	moves := p.controller.ValidMoves()
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	p.printf("moves %s\n", strings.Join(strs, " "))
}

// handlePlay plays Black's move.
func (p *Protocol) handlePlay(args []string) {
	if len(args) == 0 {
		p.printf("error play needs a square\n")
		return
	}

	sq, err := board.ParseSquare(args[0])
	if err != nil {
		p.printf("error %v\n", err)
		return
	}
	if p.controller.State() != game.BlackToMove {
		p.printf("error not black to move (%s)\n", p.controller.State())
		return
	}
	if !p.controller.Click(sq) {
		p.printf("error illegal move %s\n", sq)
	}
}

// handleGo runs one controller step, which lets the computer reply when it
// is White to move and ends the game when neither side can move.
func (p *Protocol) handleGo() {
	if !p.controller.Step() {
		p.printf("idle %s\n", p.controller.State())
	}
}

// handleHint searches for the side to move without playing.
func (p *Protocol) handleHint() {
	side := p.controller.Turn()
	if side == board.Empty {
		p.printf("hint none\n")
		return
	}

	b := p.controller.Board()
	start := time.Now()
	move, score, ok := p.engine.BestMove(b, side)
	if !ok {
		p.printf("hint none\n")
		return
	}
	p.printf("hint %s score %d nodes %d time %d\n",
		move, score, p.engine.Nodes(), time.Since(start).Milliseconds())
}

// handleDepth sets the search depth.
func (p *Protocol) handleDepth(args []string) {
	if len(args) == 0 {
		p.printf("depth %d\n", p.engine.Depth())
		return
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		p.printf("error bad depth %q\n", args[0])
		return
	}
	p.engine.SetDepth(depth)
	p.printf("depth %d\n", p.engine.Depth())
}

// handlePerft counts leaf nodes from the current position.
func (p *Protocol) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			p.printf("error bad depth %q\n", args[0])
			return
		}
		depth = d
	}

	side := p.controller.Turn()
	if side == board.Empty {
		side = board.Black
	}

	start := time.Now()
	nodes := p.engine.Perft(p.controller.Board(), side, depth)
	elapsed := time.Since(start)

	p.printf("Nodes: %d\n", nodes)
	p.printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		p.printf("NPS: %.0f\n", nps)
	}
}
