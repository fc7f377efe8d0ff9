// Reversi - a 6x6 Reversi game against the computer, built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/reversi/internal/ui"
)

var (
	depth   = flag.Int("depth", -1, "search depth (overrides the stored difficulty)")
	mute    = flag.Bool("mute", false, "start with sound disabled")
	noStore = flag.Bool("nostore", false, "do not load or save preferences and stats")
)

func main() {
	flag.Parse()

	game := ui.NewGame(ui.Options{
		Depth:   *depth,
		Mute:    *mute,
		NoStore: *noStore,
	})
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Reversi")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
