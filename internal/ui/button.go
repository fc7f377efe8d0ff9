package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonBg      = color.RGBA{60, 64, 72, 255}
	buttonHoverBg = color.RGBA{80, 84, 92, 255}
	buttonBorder  = color.RGBA{110, 115, 125, 255}
	exitBg        = color.RGBA{200, 0, 0, 255}
	exitHoverBg   = color.RGBA{235, 40, 40, 255}
	textPrimary   = color.RGBA{255, 255, 255, 255}
)

// Button is a clickable rectangle with a centred label. Coordinates are logical.
type Button struct {
	X, Y, W, H int
	Label      string
	Danger     bool
	OnClick    func()
	hovered    bool
}

// NewButton creates a new button.
func NewButton(x, y, w, h int, label string, danger bool, onClick func()) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Danger:  danger,
		OnClick: onClick,
	}
}

// IsHovered returns true if the button is hovered.
func (b *Button) IsHovered() bool {
	return b.hovered
}

// Update handles button input and reports whether it was clicked.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)

	if input.ClickedInBounds(b.X, b.Y, b.W, b.H) && b.OnClick != nil {
		b.OnClick()
		return true
	}
	return false
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := buttonBg
	if b.Danger {
		bg = exitBg
	}
	if b.hovered {
		bg = buttonHoverBg
		if b.Danger {
			bg = exitHoverBg
		}
	}

	s := float32(UIScale)
	x, y, w, h := float32(b.X)*s, float32(b.Y)*s, float32(b.W)*s, float32(b.H)*s
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, s, buttonBorder, false)

	_, th := MeasureText(b.Label, regularFace)
	drawTextCentered(screen, b.Label, regularFace, float64(b.X)+float64(b.W)/2, float64(b.Y)+float64(b.H)/2-th/2, textPrimary)
}
