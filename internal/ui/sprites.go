// Package ui implements the Reversi window using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/reversi/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/discs/*.svg
var discAssets embed.FS

// discFiles maps disc colors to their asset file paths.
var discFiles = map[board.Cell]string{
	board.Black: "assets/discs/black.svg",
	board.White: "assets/discs/white.svg",
}

// SpriteManager manages disc sprites.
type SpriteManager struct {
	discs       map[board.Cell]*ebiten.Image
	size        int     // Display size (one square)
	renderScale float64 // Render at higher resolution for quality
	scale       float64 // HiDPI scale factor
}

// NewSpriteManager creates a new sprite manager with discs of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		discs:       make(map[board.Cell]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
		scale:       1.0,
	}
	sm.loadDiscs()
	return sm
}

// SetScale sets the HiDPI scale factor.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// loadDiscs rasterises the embedded SVG discs.
func (sm *SpriteManager) loadDiscs() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for c, path := range discFiles {
		data, err := discAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read disc asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}
		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.discs[c] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawDiscAt draws a disc with its top-left corner at (x, y) in screen pixels.
// scaleX squeezes the disc horizontally around its centre (1 = full width),
// which is how a flip is animated.
func (sm *SpriteManager) DrawDiscAt(screen *ebiten.Image, c board.Cell, x, y int, scaleX float64) {
	sprite := sm.discs[c]
	if sprite == nil {
		return
	}

	base := sm.scale / sm.renderScale
	half := float64(sm.size) * sm.scale / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(base, base)
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(scaleX, 1)
	op.GeoM.Translate(float64(x)+half, float64(y)+half)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
