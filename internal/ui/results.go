package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/reversi/internal/game"
	"github.com/hailam/reversi/internal/storage"
)

// Result screen layout, in logical pixels.
const (
	resultTop     = 50
	lineGap       = 10
	buttonWidth   = 200
	buttonHeight  = 50
	buttonSpacing = 20
)

// resultLine is one centred line of the result screen.
type resultLine struct {
	text string
	bold bool
	y    float64
}

// ResultScreen is the end-of-game overlay: both scores, the outcome, the
// stored record and the buttons to leave or play again.
type ResultScreen struct {
	visible bool
	result  game.Result
	lines   []resultLine

	exit    *Button
	newGame *Button
}

// NewResultScreen creates a hidden result screen.
func NewResultScreen(onExit, onNewGame func()) *ResultScreen {
	x := BoardSize/2 - buttonWidth/2
	return &ResultScreen{
		exit:    NewButton(x, 0, buttonWidth, buttonHeight, "Exit", true, onExit),
		newGame: NewButton(x, 0, buttonWidth, buttonHeight, "New Game", false, onNewGame),
	}
}

// Show displays the result. stats and recent may be empty when nothing is
// stored.
func (rs *ResultScreen) Show(result game.Result, stats *storage.GameStats, recent []storage.GameResult) {
	rs.visible = true
	rs.result = result

	texts := []resultLine{
		{text: "Game Over", bold: true},
		{text: fmt.Sprintf("Black Score: %d", result.Black)},
		{text: fmt.Sprintf("White Score: %d", result.White)},
		{text: result.String(), bold: true},
	}
	if stats != nil {
		texts = append(texts, resultLine{text: recordLine(stats)})
	}
	if len(recent) > 0 {
		texts = append(texts, resultLine{text: recentLine(recent)})
	}
	rs.layout(texts)
}

// layout stacks the lines from the top using their measured heights and
// puts the buttons below the last one.
func (rs *ResultScreen) layout(texts []resultLine) {
	y := float64(resultTop)
	for i := range texts {
		face := regularFace
		if texts[i].bold {
			face = boldFace
		}
		texts[i].y = y
		_, h := MeasureText(texts[i].text, face)
		y += h + lineGap
	}
	rs.lines = texts

	rs.exit.Y = int(y) + buttonSpacing
	rs.newGame.Y = rs.exit.Y + buttonHeight + buttonSpacing
}

// recordLine summarises the stored statistics.
func recordLine(stats *storage.GameStats) string {
	return fmt.Sprintf("Record: %d won, %d lost, %d drawn (%.0f%%)",
		stats.Wins, stats.Losses, stats.Draws, stats.GetWinRate())
}

// recentLine lists recent games newest first as W, L or D.
func recentLine(recent []storage.GameResult) string {
	marks := make([]string, len(recent))
	for i, r := range recent {
		switch {
		case r.Won():
			marks[i] = "W"
		case r.Draw():
			marks[i] = "D"
		default:
			marks[i] = "L"
		}
	}
	return "Last games: " + strings.Join(marks, " ")
}

// Hide hides the screen.
func (rs *ResultScreen) Hide() {
	rs.visible = false
}

// IsVisible reports whether the screen is shown.
func (rs *ResultScreen) IsVisible() bool {
	return rs.visible
}

// AnyButtonHovered reports whether the cursor is over a button.
func (rs *ResultScreen) AnyButtonHovered() bool {
	return rs.visible && (rs.exit.IsHovered() || rs.newGame.IsHovered())
}

// Update handles button clicks.
func (rs *ResultScreen) Update(input *InputHandler) {
	if !rs.visible {
		return
	}
	if rs.exit.Update(input) {
		return
	}
	rs.newGame.Update(input)
}

// Draw renders the overlay on top of the final board.
func (rs *ResultScreen) Draw(screen *ebiten.Image, theme *Theme) {
	if !rs.visible {
		return
	}

	size := float32(BoardSize) * float32(UIScale)
	vector.DrawFilledRect(screen, 0, 0, size, size, theme.OverlayShadow, false)

	cx := float64(BoardSize) / 2
	for _, l := range rs.lines {
		face := regularFace
		if l.bold {
			face = boldFace
		}
		drawTextCentered(screen, l.text, face, cx, l.y, theme.TextColor)
	}

	rs.exit.Draw(screen)
	rs.newGame.Draw(screen)
}
