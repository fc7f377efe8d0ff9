package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/reversi/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	Felt          color.RGBA
	GridLine      color.RGBA
	LegalMove     color.RGBA
	LastMove      color.RGBA
	FlipPreview   color.RGBA
	Background    color.RGBA
	TextColor     color.RGBA
	OverlayShadow color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Felt:          color.RGBA{0, 128, 0, 255},
		GridLine:      color.RGBA{0, 0, 0, 255},
		LegalMove:     color.RGBA{0, 0, 0, 70},
		LastMove:      color.RGBA{220, 200, 60, 90},
		FlipPreview:   color.RGBA{230, 60, 60, 200},
		Background:    color.RGBA{0, 100, 0, 255},
		TextColor:     color.RGBA{255, 255, 255, 255},
		OverlayShadow: color.RGBA{0, 0, 0, 170},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	if r.sprites != nil {
		r.sprites.SetScale(scale)
	}
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the felt and the grid.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, r.s(r.boardSize), r.s(r.boardSize), r.theme.Felt, false)

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			x, y := r.SquareToScreen(board.Sq(row, col))
			vector.StrokeRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), float32(r.scale), r.theme.GridLine, false)
		}
	}
}

// DrawLastMove highlights the square of the most recent move.
func (r *Renderer) DrawLastMove(screen *ebiten.Image, sq board.Square) {
	if !sq.Valid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), r.theme.LastMove, false)
}

// DrawLegalMoves draws a small dot on every legal square.
func (r *Renderer) DrawLegalMoves(screen *ebiten.Image, moves []board.Square) {
	for _, sq := range moves {
		cx, cy := r.squareCenter(sq)
		vector.DrawFilledCircle(screen, cx, cy, r.s(r.squareSize)*0.12, r.theme.LegalMove, true)
	}
}

// DrawFlipPreview marks the discs a hovered move would capture.
func (r *Renderer) DrawFlipPreview(screen *ebiten.Image, flips []board.Square) {
	for _, sq := range flips {
		cx, cy := r.squareCenter(sq)
		vector.StrokeCircle(screen, cx, cy, r.s(r.squareSize)*0.2, 2*float32(r.scale), r.theme.FlipPreview, true)
	}
}

// DrawDiscs draws every disc on the board, squeezing those that are
// mid-flip according to anims.
func (r *Renderer) DrawDiscs(screen *ebiten.Image, b *board.Board, anims *AnimationManager) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := board.Sq(row, col)
			c := b.At(sq)
			if c == board.Empty {
				continue
			}

			scaleX := 1.0
			if anims != nil {
				scaleX = anims.FlipScale(sq)
			}

			x, y := r.SquareToScreen(sq)
			r.sprites.DrawDiscAt(screen, c, int(r.s(x)), int(r.s(y)), scaleX)
		}
	}
}

// squareCenter returns the scaled screen centre of sq.
func (r *Renderer) squareCenter(sq board.Square) (float32, float32) {
	x, y := r.SquareToScreen(sq)
	half := r.s(r.squareSize) / 2
	return r.s(x) + half, r.s(y) + half
}

// SquareToScreen converts a board square to logical screen coordinates of its
// top-left corner. Row 0 is drawn at the top.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return sq.Col * r.squareSize, sq.Row * r.squareSize
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	return board.Sq(y/r.squareSize, x/r.squareSize)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
