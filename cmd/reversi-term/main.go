package main

import (
	"flag"
	"io"
	"log"
	"time"

	"github.com/rivo/tview"

	"github.com/hailam/reversi/internal/engine"
	"github.com/hailam/reversi/internal/game"
	"github.com/hailam/reversi/internal/term"
)

var (
	depth = flag.Int("depth", engine.DefaultDepth, "search depth of the computer player")
	delay = flag.Duration("delay", time.Second, "pause before the computer replies")
)

func main() {
	flag.Parse()

	eng := engine.NewEngine()
	eng.SetDepth(*depth)

	c := game.NewController(eng)
	// The terminal is owned by tview; transition logs would corrupt it.
	c.SetLogger(log.New(io.Discard, "", 0))

	app := tview.NewApplication()
	status := tview.NewTextView().SetDynamicColors(false)
	view := term.NewBoardView(app, c, status, *delay)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view.Box, term.BoardHeight+1, 0, true).
		AddItem(status, 0, 1, false)
	layout.SetBorder(true).SetTitle(" Reversi ")

	if err := app.SetRoot(layout, true).SetFocus(view.Box).Run(); err != nil {
		log.Fatal(err)
	}
}
