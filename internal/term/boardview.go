// Package term draws a Reversi game in the terminal with tview.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hailam/reversi/internal/board"
	"github.com/hailam/reversi/internal/game"
)

// Symbols used for the cells.
const (
	blackDisc = '●'
	whiteDisc = '○'
	legalDot  = '·'
	emptyCell = ' '
)

// BoardHeight is the number of rows drawn, column labels included.
const BoardHeight = board.Size + 1

var (
	feltColor     = tcell.NewRGBColor(0, 128, 0)
	feltAltColor  = tcell.NewRGBColor(0, 112, 0)
	cursorColor   = tcell.NewRGBColor(200, 170, 40)
	lastMoveColor = tcell.NewRGBColor(90, 140, 40)
)

// BoardView is a tview primitive showing the board, a cursor and a status
// line. All controller access happens on the tview event goroutine.
type BoardView struct {
	Box *tview.Box

	app        *tview.Application
	controller *game.Controller
	status     *tview.TextView

	selRow, selCol int
	message        string
	delay          time.Duration
}

// NewBoardView creates a view for c. delay is the pause before the
// computer replies.
func NewBoardView(app *tview.Application, c *game.Controller, status *tview.TextView, delay time.Duration) *BoardView {
	v := &BoardView{
		Box:        tview.NewBox(),
		app:        app,
		controller: c,
		status:     status,
		selRow:     board.Size / 2,
		selCol:     board.Size / 2,
		delay:      delay,
	}

	c.OnMove(func(ev game.MoveEvent) {
		v.message = fmt.Sprintf("%s played %s and flipped %d", ev.Color, ev.Square, len(ev.Flips))
	})
	c.OnPass(func(side board.Cell) {
		v.message = fmt.Sprintf("%s has no move and passes", side)
	})
	c.OnGameOver(func(r game.Result) {
		v.message = fmt.Sprintf("Game over. Black %d, White %d. %s", r.Black, r.White, r)
	})

	v.Box.SetDrawFunc(v.draw)
	v.Box.SetInputCapture(v.handleKey)
	v.refreshStatus()
	return v
}

// MoveSelection moves the cursor, staying on the board.
func (v *BoardView) MoveSelection(dr, dc int) {
	sq := board.Sq(v.selRow+dr, v.selCol+dc)
	if !sq.Valid() {
		return
	}
	v.selRow, v.selCol = sq.Row, sq.Col
}

// Selected returns the square under the cursor.
func (v *BoardView) Selected() board.Square {
	return board.Sq(v.selRow, v.selCol)
}

// PlaySelected plays Black's move under the cursor and schedules the
// computer's reply.
func (v *BoardView) PlaySelected() {
	if !v.controller.Click(v.Selected()) {
		return
	}
	v.refreshStatus()
	v.scheduleStep()
}

// scheduleStep runs controller steps after the delay until it is the human's
// turn again or the game ends.
func (v *BoardView) scheduleStep() {
	if v.controller.State() != game.WhiteToMove {
		return
	}
	time.AfterFunc(v.delay, func() {
		v.app.QueueUpdateDraw(func() {
			v.controller.Step()
			v.refreshStatus()
			v.scheduleStep()
		})
	})
}

// NewGame resets the controller.
func (v *BoardView) NewGame() {
	v.controller.Reset()
	v.message = ""
	v.refreshStatus()
}

func (v *BoardView) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		v.MoveSelection(-1, 0)
	case tcell.KeyDown:
		v.MoveSelection(1, 0)
	case tcell.KeyLeft:
		v.MoveSelection(0, -1)
	case tcell.KeyRight:
		v.MoveSelection(0, 1)
	case tcell.KeyEnter:
		v.PlaySelected()
	case tcell.KeyEscape:
		v.app.Stop()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			v.MoveSelection(-1, 0)
		case 'j':
			v.MoveSelection(1, 0)
		case 'h':
			v.MoveSelection(0, -1)
		case 'l':
			v.MoveSelection(0, 1)
		case ' ':
			v.PlaySelected()
		case 'n':
			v.NewGame()
		case 'q':
			v.app.Stop()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (v *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	b := v.controller.Board()
	last := v.controller.LastMove()
	var legal map[board.Square]bool
	if v.controller.State() == game.BlackToMove {
		legal = make(map[board.Square]bool)
		for _, sq := range b.ValidMoves(board.Black) {
			legal[sq] = true
		}
	}

	left := x + 3
	for col := 0; col < board.Size; col++ {
		screen.SetContent(left+col*2, y, rune('a'+col), nil, tcell.StyleDefault)
	}

	for row := 0; row < board.Size; row++ {
		screen.SetContent(x+1, y+1+row, rune('1'+row), nil, tcell.StyleDefault)
		for col := 0; col < board.Size; col++ {
			sq := board.Sq(row, col)
			bg := feltColor
			if (row+col)%2 == 1 {
				bg = feltAltColor
			}
			switch {
			case sq == v.Selected():
				bg = cursorColor
			case sq == last:
				bg = lastMoveColor
			}

			r := emptyCell
			fg := tcell.ColorBlack
			switch b.At(sq) {
			case board.Black:
				r = blackDisc
			case board.White:
				r, fg = whiteDisc, tcell.ColorWhite
			default:
				if legal[sq] {
					r = legalDot
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(left+col*2, y+1+row, r, nil, style)
			screen.SetContent(left+col*2+1, y+1+row, ' ', nil, style)
		}
	}
	return x, y, board.Size*2 + 3, BoardHeight
}

func (v *BoardView) refreshStatus() {
	black, white := v.controller.Score()

	var turn string
	switch v.controller.State() {
	case game.BlackToMove:
		turn = "● Your move (Black)"
	case game.WhiteToMove:
		turn = "○ Thinking..."
	default:
		turn = "Game over: " + v.controller.Result().String()
	}

	v.status.SetText(fmt.Sprintf("  Black %d  White %d\n  %s\n  %s\n\n  ↑↓←→/hjkl move  ⏎/space play  n new  q quit",
		black, white, turn, v.message))
}
